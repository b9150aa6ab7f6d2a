// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"github.com/google/uuid"

	"coldroute/internal/core/domain/model/customer"
	"coldroute/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null;index"`
	Phone    string      `gorm:"type:varchar(32)"`
	Address  string      `gorm:"type:varchar(512)"`
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// LocationDTO represents the embedded delivery coordinate within the customer table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      customer.ID().Bytes(),
		Name:    customer.Name(),
		Phone:   customer.Phone(),
		Address: customer.Address(),
		Location: LocationDTO{
			Latitude:  customer.Location().Latitude(),
			Longitude: customer.Location().Longitude(),
		},
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.Address, location)
}
