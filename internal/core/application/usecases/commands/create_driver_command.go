package commands

import (
	"errors"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverFullNameIsRequired = errors.New("driver full name is required")
	ErrDriverPhoneIsRequired    = errors.New("driver phone is required")
)

// CreateDriverCommand represents a request to register a new delivery driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	fullName string
	phone    string
	notes    string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates that the driver ID, full name, and phone are valid.
func NewCreateDriverCommand(
	driverID kernel.UUID, fullName, phone, notes string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setFullName(fullName),
		cmd.setPhone(phone),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// FullName returns the driver's full name.
func (c CreateDriverCommand) FullName() string {
	return c.fullName
}

// Phone returns the driver's contact phone.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// Notes returns free-text notes about the driver, possibly empty.
func (c CreateDriverCommand) Notes() string {
	return c.notes
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setFullName(fullName string) error {
	if fullName == "" {
		return ErrDriverFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrDriverPhoneIsRequired
	}

	c.phone = phone
	return nil
}
