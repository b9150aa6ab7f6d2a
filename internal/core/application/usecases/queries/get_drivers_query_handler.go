package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldroute/internal/core/domain/model/kernel"
)

// GetDriversQueryHandler retrieves driver rows from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver listing queries.
// Requires a GORM database connection for query execution.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the driver listing, sorted by full name.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]GetDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			full_name,
			phone,
			notes,
			created_at
		FROM drivers
		ORDER BY full_name, id
	`

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetDriversQueryResponse, 0)

	for rows.Next() {
		var resp GetDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.FullName,
			&resp.Phone,
			&resp.Notes,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
