package delivery

import (
	"errors"
	"time"

	"coldroute/internal/core/domain/model/kernel"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery or RestoreDelivery factory functions.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryIsNotEditable is returned when mutating the stop set of a
	// delivery that has left Planned status.
	ErrDeliveryIsNotEditable = errors.New("only planned deliveries can be edited")

	// ErrStopAlreadyPresent is returned when adding a customer who already
	// has a stop on the run.
	ErrStopAlreadyPresent = errors.New("customer already has a stop on this delivery")
)

// Delivery is the aggregate root for a delivery run: an optional driver, a
// scheduled date, and the ordered stops produced by route composition.
type Delivery struct {
	id           kernel.UUID
	driverID     *kernel.UUID
	deliveryDate *time.Time
	status       Status
	createdAt    time.Time
	stops        []RoutedStop

	isConstructed bool
}

// NewDelivery creates a planned delivery run with no stops.
func NewDelivery(id kernel.UUID, driverID *kernel.UUID, deliveryDate *time.Time) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:            id,
		driverID:      driverID,
		deliveryDate:  deliveryDate,
		status:        Planned,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	driverID *kernel.UUID,
	deliveryDate *time.Time,
	status Status,
	createdAt time.Time,
	stops []RoutedStop,
) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, rs := range stops {
		if err := rs.Stop.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:            id,
		driverID:      driverID,
		deliveryDate:  deliveryDate,
		status:        status,
		createdAt:     createdAt,
		stops:         stops,
		isConstructed: true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// DriverID returns the assigned driver's ID, or nil if unassigned.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// DeliveryDate returns the scheduled date, if set.
func (d *Delivery) DeliveryDate() *time.Time {
	return d.deliveryDate
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns the creation timestamp of the run.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Stops returns the routed stops in visiting order.
func (d *Delivery) Stops() []RoutedStop {
	return d.stops
}

// HasStopFor reports whether the customer already has a stop on this run.
func (d *Delivery) HasStopFor(customerID kernel.UUID) bool {
	for _, rs := range d.stops {
		if rs.Stop.CustomerID().IsEqual(customerID) {
			return true
		}
	}
	return false
}

// SetRoute replaces the stop set with a freshly composed route. The whole
// route is recomputed and reassigned on every membership change; stops are
// never reordered in place.
func (d *Delivery) SetRoute(stops []RoutedStop) error {
	if d.status != Planned {
		return ErrDeliveryIsNotEditable
	}
	seen := make(map[kernel.UUID]bool, len(stops))
	for _, rs := range stops {
		if err := rs.Stop.Validate(); err != nil {
			return err
		}
		if seen[rs.Stop.CustomerID()] {
			return ErrStopAlreadyPresent
		}
		seen[rs.Stop.CustomerID()] = true
	}

	d.stops = stops
	return nil
}

// AssignDriver assigns or reassigns the driver for a planned run.
func (d *Delivery) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.status != Planned {
		return ErrDeliveryIsNotEditable
	}

	d.driverID = &driverID
	return nil
}

// Complete marks the run as driven.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Cancel calls the run off.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}
