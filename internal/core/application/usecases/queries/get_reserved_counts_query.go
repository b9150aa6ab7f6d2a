package queries

import (
	"errors"

	"coldroute/internal/pkg/guard"
	"coldroute/internal/pkg/normalize"
)

var ErrGetReservedCountsQueryIsNotConstructed = errors.New(
	"GetReservedCountsQuery must be created via NewGetReservedCountsQuery constructor",
)

// GetReservedCountsQuery aggregates reserved quantities per warehouse,
// product, and size across all active orders. Lines without a warehouse tag
// are skipped: unassigned stock must not be subtracted from every warehouse.
type GetReservedCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReservedCountsQuery creates a query to aggregate reserved quantities.
// This is a parameterless query covering all active orders.
func NewGetReservedCountsQuery() GetReservedCountsQuery {
	return GetReservedCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReservedCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetReservedCountsQueryIsNotConstructed)
}

// GetReservedCountsQueryResponse is one aggregated bucket of reserved stock.
type GetReservedCountsQueryResponse struct {
	WarehouseID string
	ProductName string
	Size        string
	Reserved    int
}

// Key returns the bucket's composite grouping key, matching what inventory
// views subtract reserved counts by.
func (r GetReservedCountsQueryResponse) Key() string {
	return r.WarehouseID + "__" + normalize.Key(r.ProductName, r.Size)
}
