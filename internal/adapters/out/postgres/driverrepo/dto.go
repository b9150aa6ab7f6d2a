// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence.
package driverrepo

import (
	"time"

	"github.com/google/uuid"

	"coldroute/internal/core/domain/model/driver"
	"coldroute/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(255);not null;index"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(driver *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        driver.ID().Bytes(),
		FullName:  driver.FullName(),
		Phone:     driver.Phone(),
		Notes:     driver.Notes(),
		CreatedAt: driver.CreatedAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.FullName, dto.Phone, dto.Notes, dto.CreatedAt)
}
