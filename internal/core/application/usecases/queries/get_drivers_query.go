package queries

import (
	"errors"
	"time"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves every registered driver. Used by the delivery
// planning screen to populate the driver picker.
type GetDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a driver listing query.
func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// GetDriversQueryResponse represents one driver row.
type GetDriversQueryResponse struct {
	ID        kernel.UUID
	FullName  string
	Phone     string
	Notes     string
	CreatedAt time.Time
}
