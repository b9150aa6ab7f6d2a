package customer

import (
	"errors"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory functions.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an aggregate root representing a delivery customer: a display
// name, contact details, and the geographic coordinate used by route
// composition.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - The coordinate must be a properly constructed GeoPoint
type Customer struct {
	id       kernel.UUID
	name     string
	phone    string
	address  string
	location kernel.GeoPoint

	isConstructed bool
}

// NewCustomer creates a customer with validation. Phone and address are
// optional; the coordinate is required because every customer can appear as
// a delivery stop.
func NewCustomer(id kernel.UUID, name, phone, address string, location kernel.GeoPoint) (*Customer, error) {
	customer := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setLocation(location),
	); err != nil {
		return nil, err
	}

	customer.phone = phone
	customer.address = address
	return customer, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, phone, address string, location kernel.GeoPoint) (*Customer, error) {
	return NewCustomer(id, name, phone, address, location)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's street address, possibly empty.
func (c *Customer) Address() string {
	return c.address
}

// Location returns the customer's geographic coordinate.
func (c *Customer) Location() kernel.GeoPoint {
	return c.location
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
