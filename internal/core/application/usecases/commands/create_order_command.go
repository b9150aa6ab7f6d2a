package commands

import (
	"errors"
	"time"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new draft order.
// The customer is optional: walk-in drafts can be attached to a customer
// later, before confirmation.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	customerID           *kernel.UUID
	expectedDeliveryDate *time.Time
	notes                string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a draft order.
// Validates the order ID and, when present, the customer ID.
func NewCreateOrderCommand(
	orderID kernel.UUID, customerID *kernel.UUID, expectedDeliveryDate *time.Time, notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	cmd.customerID = customerID
	cmd.expectedDeliveryDate = expectedDeliveryDate
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's ID, or nil for a walk-in draft.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// ExpectedDeliveryDate returns the promised delivery date, if any.
func (c CreateOrderCommand) ExpectedDeliveryDate() *time.Time {
	return c.expectedDeliveryDate
}

// Notes returns free-text notes for the order.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
