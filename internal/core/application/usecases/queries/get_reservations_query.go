// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/guard"
)

var (
	ErrGetReservationsQueryIsNotConstructed = errors.New(
		"GetReservationsQuery must be created via NewGetReservationsQuery constructor",
	)
	ErrQueryProductNameIsRequired = errors.New("product name is required")
)

// GetReservationsQuery looks up which active order lines reserve stock for a
// catalog item. The warehouse ID is optional; when set, only lines tagged
// with that warehouse count.
//
// Example:
//
//	query, err := NewGetReservationsQuery("מקפיא דגם A", "60x180x70", "")
//	if err != nil {
//	    return err
//	}
//
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get reservations: %w", err)
//	}
//	fmt.Printf("%d units reserved\n", len(details))
type GetReservationsQuery struct {
	productName string
	sizeLabel   string
	warehouseID string

	guard guard.ConstructorGuard
}

// NewGetReservationsQuery creates a reservation lookup for a catalog item.
// The size label may be empty when the product has no size dimension.
func NewGetReservationsQuery(productName, sizeLabel, warehouseID string) (GetReservationsQuery, error) {
	if productName == "" {
		return GetReservationsQuery{}, ErrQueryProductNameIsRequired
	}

	return GetReservationsQuery{
		productName: productName,
		sizeLabel:   sizeLabel,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReservationsQuery) Validate() error {
	return q.guard.Validate(ErrGetReservationsQueryIsNotConstructed)
}

// ProductName returns the queried catalog product name.
func (q GetReservationsQuery) ProductName() string {
	return q.productName
}

// SizeLabel returns the queried size label as entered.
func (q GetReservationsQuery) SizeLabel() string {
	return q.sizeLabel
}

// WarehouseID returns the warehouse scope, or empty for all warehouses.
func (q GetReservationsQuery) WarehouseID() string {
	return q.warehouseID
}

// GetReservationsQueryResponse represents one matched reservation.
type GetReservationsQueryResponse struct {
	OrderID              kernel.UUID
	Status               string
	CustomerName         *string
	Quantity             int
	ProductName          string
	Size                 string
	CreatedAt            time.Time
	ExpectedDeliveryDate *time.Time
	TotalAmount          *float64
	LowConfidence        bool
}
