package queries

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"gorm.io/gorm"

	"coldroute/internal/core/domain/model/order"
	"coldroute/internal/pkg/normalize"
)

// GetReservedCountsQueryHandler aggregates reserved stock per warehouse,
// product, and size from the lines of all active orders.
type GetReservedCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetReservedCountsQueryHandler creates a handler for reserved count aggregation.
// Requires a GORM database connection for query execution.
func NewGetReservedCountsQueryHandler(db *gorm.DB) GetReservedCountsQueryHandler {
	return GetReservedCountsQueryHandler{db: db}
}

type reservedBucket struct {
	warehouseID string
	productName string
	size        string
}

// Handle executes the aggregation.
// Grouping happens here rather than in SQL because the warehouse and size
// live inside the free-form variant blob.
func (h GetReservedCountsQueryHandler) Handle(
	ctx context.Context,
	query GetReservedCountsQuery,
) ([]GetReservedCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.product_name,
			l.variant,
			l.quantity
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.status IN (?, ?)
	`, order.Draft, order.Confirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[reservedBucket]int)

	for rows.Next() {
		var (
			productName string
			variantRaw  sql.NullString
			quantity    int
		)

		if err = rows.Scan(&productName, &variantRaw, &quantity); err != nil {
			return nil, err
		}

		variant := order.ParseVariant(variantRaw.String)
		warehouseID, ok := variant.WarehouseID()
		warehouseID = strings.TrimSpace(warehouseID)
		if !ok || warehouseID == "" {
			continue
		}

		size := variant.Size()
		if size == "" {
			size = normalize.Size(productName)
		}

		bucket := reservedBucket{
			warehouseID: warehouseID,
			productName: normalize.Text(productName),
			size:        size,
		}
		counts[bucket] += quantity
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	responses := make([]GetReservedCountsQueryResponse, 0, len(counts))
	for bucket, reserved := range counts {
		responses = append(responses, GetReservedCountsQueryResponse{
			WarehouseID: bucket.warehouseID,
			ProductName: bucket.productName,
			Size:        bucket.size,
			Reserved:    reserved,
		})
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].Key() < responses[j].Key()
	})

	return responses, nil
}
