package commands

import (
	"errors"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateCustomerCommand represents a request to register a new customer
// with their delivery coordinate.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	phone      string
	address    string
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates that the customer ID, name, and coordinate are valid.
func NewCreateCustomerCommand(
	customerID kernel.UUID, name, phone, address string, location kernel.GeoPoint,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	cmd.phone = phone
	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer's contact phone, possibly empty.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's free-text address, possibly empty.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

// Location returns the customer's delivery coordinate.
func (c CreateCustomerCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
