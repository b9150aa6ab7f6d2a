package commands

import (
	"errors"
	"time"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrStopsAreRequired      = errors.New("a delivery run needs at least one stop")
	ErrDuplicateStopCustomer = errors.New("a customer can appear on a run only once")
)

// StopInput describes one requested stop on a new delivery run. The visiting
// order is not part of the input; the route is composed from customer
// coordinates.
type StopInput struct {
	CustomerID    kernel.UUID
	DeliveryPrice float64
	Notes         string
}

// CreateDeliveryCommand represents a request to plan a new delivery run for a
// set of customers.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	driverID     *kernel.UUID
	deliveryDate *time.Time
	stops        []StopInput

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to plan a delivery run.
// Validates the delivery ID, the optional driver ID, and that every stop
// names a distinct customer.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID, driverID *kernel.UUID, deliveryDate *time.Time, stops []StopInput,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return CreateDeliveryCommand{}, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return CreateDeliveryCommand{}, err
		}
	}
	if err := cmd.setStops(stops); err != nil {
		return CreateDeliveryCommand{}, err
	}

	cmd.driverID = driverID
	cmd.deliveryDate = deliveryDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new run.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the assigned driver's ID, or nil if unassigned.
func (c CreateDeliveryCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// DeliveryDate returns the scheduled date, if set.
func (c CreateDeliveryCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// Stops returns the requested stops in input order.
func (c CreateDeliveryCommand) Stops() []StopInput {
	return c.stops
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setStops(stops []StopInput) error {
	if len(stops) == 0 {
		return ErrStopsAreRequired
	}

	seen := make(map[kernel.UUID]bool, len(stops))
	for _, stop := range stops {
		if err := stop.CustomerID.Validate(); err != nil {
			return err
		}
		if seen[stop.CustomerID] {
			return ErrDuplicateStopCustomer
		}
		seen[stop.CustomerID] = true
	}

	c.stops = stops
	return nil
}
