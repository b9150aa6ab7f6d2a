package driver

import (
	"errors"
	"time"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through the NewDriver or RestoreDriver factory functions.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is an aggregate root representing a delivery driver available for
// assignment to delivery runs.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Full name and phone must be non-empty
type Driver struct {
	id        kernel.UUID
	fullName  string
	phone     string
	notes     string
	createdAt time.Time

	isConstructed bool
}

// NewDriver creates a driver with validation. Notes are optional.
func NewDriver(id kernel.UUID, fullName, phone, notes string) (*Driver, error) {
	driver := &Driver{
		isConstructed: true,
		createdAt:     time.Now().UTC(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setFullName(fullName),
		driver.setPhone(phone),
	); err != nil {
		return nil, err
	}

	driver.notes = notes
	return driver, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.UUID, fullName, phone, notes string, createdAt time.Time) (*Driver, error) {
	driver, err := NewDriver(id, fullName, phone, notes)
	if err != nil {
		return nil, err
	}

	driver.createdAt = createdAt
	return driver, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// FullName returns the driver's full name.
func (d *Driver) FullName() string {
	return d.fullName
}

// Phone returns the driver's contact phone.
func (d *Driver) Phone() string {
	return d.phone
}

// Notes returns free-text notes about the driver, possibly empty.
func (d *Driver) Notes() string {
	return d.notes
}

// CreatedAt returns when the driver was registered.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	d.fullName = fullName
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}
