// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"

	"coldroute/internal/core/domain/model/delivery"
	"coldroute/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
type DeliveryDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryDate *time.Time `gorm:"index"`
	Status       int        `gorm:"type:int;not null;index"`
	CreatedAt    time.Time  `gorm:"not null"`
	Stops        []StopDTO  `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// StopDTO represents the database structure for persisting routed stops.
// The customer's coordinate is denormalized onto the stop so a persisted
// route stays stable even if the customer's address changes later.
type StopDTO struct {
	DeliveryID    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Location      LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	DeliveryPrice float64     `gorm:"type:double precision;not null"`
	Notes         string      `gorm:"type:text"`
	SequenceIndex int         `gorm:"type:int;not null"`
	DistanceKm    float64     `gorm:"type:double precision;not null"`
}

// TableName specifies the database table name for stop entities.
// Overrides GORM's default naming convention to use "delivery_stops".
func (StopDTO) TableName() string {
	return "delivery_stops"
}

// LocationDTO represents the embedded stop coordinate within the stops table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Maps the run and all its routed stops in visiting order.
func fromDomain(delivery *delivery.Delivery) DeliveryDTO {
	deliveryID := delivery.ID().Bytes()

	var driverID *uuid.UUID
	if id := delivery.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	stops := make([]StopDTO, 0, len(delivery.Stops()))
	for _, rs := range delivery.Stops() {
		stops = append(stops, StopDTO{
			DeliveryID: deliveryID,
			CustomerID: rs.Stop.CustomerID().Bytes(),
			Location: LocationDTO{
				Latitude:  rs.Stop.Location().Latitude(),
				Longitude: rs.Stop.Location().Longitude(),
			},
			DeliveryPrice: rs.Stop.DeliveryPrice(),
			Notes:         rs.Stop.Notes(),
			SequenceIndex: rs.SequenceIndex,
			DistanceKm:    rs.DistanceFromDepotKm,
		})
	}

	return DeliveryDTO{
		ID:           deliveryID,
		DriverID:     driverID,
		DeliveryDate: delivery.DeliveryDate(),
		Status:       int(delivery.Status()),
		CreatedAt:    delivery.CreatedAt(),
		Stops:        stops,
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete run with its routed stops using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	stops := make([]delivery.RoutedStop, 0, len(dto.Stops))
	for _, stopDto := range dto.Stops {
		rs, stopErr := stopToDomain(stopDto)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, rs)
	}

	return delivery.RestoreDelivery(
		id,
		driverID,
		dto.DeliveryDate,
		delivery.Status(dto.Status),
		dto.CreatedAt,
		stops,
	)
}

// stopToDomain converts a stop DTO to a routed stop value.
func stopToDomain(dto StopDTO) (delivery.RoutedStop, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return delivery.RoutedStop{}, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return delivery.RoutedStop{}, err
	}

	stop, err := delivery.NewStop(customerID, location, dto.DeliveryPrice, dto.Notes)
	if err != nil {
		return delivery.RoutedStop{}, err
	}

	return delivery.RoutedStop{
		Stop:                stop,
		SequenceIndex:       dto.SequenceIndex,
		DistanceFromDepotKm: dto.DistanceKm,
	}, nil
}
