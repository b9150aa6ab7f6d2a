// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and customer.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID           *uuid.UUID `gorm:"type:uuid;index"`
	Status               int        `gorm:"type:int;not null;index"`
	ExpectedDeliveryDate *time.Time
	Notes                string    `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"not null"`
	Lines                []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents the database structure for persisting order lines.
// The variant column stores the free-form metadata blob exactly as received;
// its shape is interpreted by the domain, never by the schema.
type LineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(512);not null"`
	Variant     string    `gorm:"type:text"`
	Quantity    int       `gorm:"type:int;not null"`
	UnitPrice   float64   `gorm:"type:double precision;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including lines and the optional customer link.
func fromDomain(order *order.Order) OrderDTO {
	orderID := order.ID().Bytes()

	var customerID *uuid.UUID
	if id := order.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	lines := make([]LineDTO, 0, len(order.Lines()))
	for _, line := range order.Lines() {
		lines = append(lines, LineDTO{
			ID:          line.ID().Bytes(),
			OrderID:     orderID,
			ProductName: line.ProductName(),
			Variant:     line.Variant().Raw(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:                   orderID,
		CustomerID:           customerID,
		Status:               int(order.Status()),
		ExpectedDeliveryDate: order.ExpectedDeliveryDate(),
		Notes:                order.Notes(),
		CreatedAt:            order.CreatedAt(),
		Lines:                lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		customerID = &cID
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Status(dto.Status),
		dto.ExpectedDeliveryDate,
		dto.Notes,
		dto.CreatedAt,
		lines,
	)
}

// lineToDomain converts a line DTO to a domain entity.
func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.NewLine(id, dto.ProductName, dto.Variant, dto.Quantity, dto.UnitPrice)
}
