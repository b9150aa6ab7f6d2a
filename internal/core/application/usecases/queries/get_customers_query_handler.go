package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldroute/internal/core/domain/model/kernel"
)

// GetCustomersQueryHandler retrieves customer rows from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listing queries.
// Requires a GORM database connection for query execution.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the customer listing.
// Results are sorted by name for stable pagination-free listings.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	sql := `
		SELECT
			id,
			name,
			phone,
			address,
			location_latitude,
			location_longitude
		FROM customers
	`
	var args []any
	if query.NameFilter() != "" {
		sql += ` WHERE name ILIKE ?`
		args = append(args, "%"+query.NameFilter()+"%")
	}
	sql += ` ORDER BY name, id`

	rows, err := tx.Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetCustomersQueryResponse, 0)

	for rows.Next() {
		var resp GetCustomersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.Address,
			&resp.Latitude,
			&resp.Longitude,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = customerID

		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
