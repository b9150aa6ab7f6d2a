package order

import (
	"errors"
	"time"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotEditable is returned when adding lines to an order that
	// has left Draft status.
	ErrOrderIsNotEditable = errors.New("only Draft orders can be edited")
)

// Order is the customer-order aggregate root. It manages the order lifecycle
// from draft through confirmation to fulfillment or cancellation, and owns
// its line items.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Status transitions follow the Status state machine
//   - Lines can only be added while the order is in Draft status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id                   kernel.UUID
	customerID           *kernel.UUID
	status               Status
	expectedDeliveryDate *time.Time
	notes                string
	createdAt            time.Time
	lines                []*Line

	isConstructed bool
}

// NewOrder creates a draft order. The customer link is optional: quick quotes
// start as anonymous drafts and are attached to a customer later.
func NewOrder(id kernel.UUID, customerID *kernel.UUID, expectedDeliveryDate *time.Time, notes string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                   id,
		customerID:           customerID,
		status:               Draft,
		expectedDeliveryDate: expectedDeliveryDate,
		notes:                notes,
		createdAt:            time.Now().UTC(),
		isConstructed:        true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without running the
// creation-time defaults. The status must be valid and lines constructed.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	status Status,
	expectedDeliveryDate *time.Time,
	notes string,
	createdAt time.Time,
	lines []*Line,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                   id,
		customerID:           customerID,
		status:               status,
		expectedDeliveryDate: expectedDeliveryDate,
		notes:                notes,
		createdAt:            createdAt,
		lines:                lines,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the linked customer's ID, or nil for anonymous drafts.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ExpectedDeliveryDate returns the promised delivery date, if set.
func (o *Order) ExpectedDeliveryDate() *time.Time {
	return o.expectedDeliveryDate
}

// Notes returns the free-text order notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns the order's line items.
func (o *Order) Lines() []*Line {
	return o.lines
}

// TotalAmount returns the sum of all line totals.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, line := range o.lines {
		total += line.TotalPrice()
	}
	return total
}

// AddLine appends a line item to a draft order.
// Returns ErrOrderIsNotEditable once the order has left Draft status.
func (o *Order) AddLine(line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	if o.status != Draft {
		return ErrOrderIsNotEditable
	}

	o.lines = append(o.lines, line)
	return nil
}

// AttachCustomer links the order to a customer.
// Allowed only while the order is active.
func (o *Order) AttachCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if !o.status.IsActive() {
		return errs.NewValueIsInvalidError("order is closed")
	}

	o.customerID = &customerID
	return nil
}

// Confirm transitions the order from Draft to Confirmed.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Fulfill transitions the order from Confirmed to Fulfilled,
// releasing its inventory reservation.
func (o *Order) Fulfill() error {
	newStatus, err := o.status.Fulfill()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions an active order to Cancelled,
// releasing its inventory reservation.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
