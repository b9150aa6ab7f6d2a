package queries

import (
	"errors"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves customers, optionally filtered by a name
// fragment. Used by the order entry and delivery planning screens.
type GetCustomersQuery struct {
	nameFilter string

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a customer listing query.
// An empty name filter returns all customers.
func NewGetCustomersQuery(nameFilter string) GetCustomersQuery {
	return GetCustomersQuery{
		nameFilter: nameFilter,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// NameFilter returns the name fragment to filter by, possibly empty.
func (q GetCustomersQuery) NameFilter() string {
	return q.nameFilter
}

// GetCustomersQueryResponse represents one customer row.
type GetCustomersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Address   string
	Latitude  float64
	Longitude float64
}
