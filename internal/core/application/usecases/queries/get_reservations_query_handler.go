package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/core/domain/model/order"
	"coldroute/internal/core/domain/services"
)

// GetReservationsQueryHandler loads every line of every active order and runs
// the reservation matcher over them. The matching itself is pure domain
// logic; this handler only feeds it.
type GetReservationsQueryHandler struct {
	db      *gorm.DB
	matcher services.ReservationMatcher
}

// NewGetReservationsQueryHandler creates a handler for reservation lookups.
// Requires a GORM database connection for query execution.
func NewGetReservationsQueryHandler(db *gorm.DB, matcher services.ReservationMatcher) GetReservationsQueryHandler {
	return GetReservationsQueryHandler{
		db:      db,
		matcher: matcher,
	}
}

// Handle executes the reservation lookup.
// Fetches the lines of all Draft and Confirmed orders with their order
// context, then delegates matching to the domain service.
func (h GetReservationsQueryHandler) Handle(
	ctx context.Context,
	query GetReservationsQuery,
) ([]GetReservationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.fetchCandidates(ctx)
	if err != nil {
		return nil, err
	}

	details := h.matcher.Match(services.ReservationQuery{
		ProductName: query.ProductName(),
		SizeLabel:   query.SizeLabel(),
		WarehouseID: query.WarehouseID(),
	}, candidates)

	responses := make([]GetReservationsQueryResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, GetReservationsQueryResponse{
			OrderID:              d.OrderID,
			Status:               d.Status.String(),
			CustomerName:         d.CustomerName,
			Quantity:             d.Quantity,
			ProductName:          d.ProductName,
			Size:                 d.Size,
			CreatedAt:            d.OrderCreatedAt,
			ExpectedDeliveryDate: d.ExpectedDeliveryDate,
			TotalAmount:          d.OrderTotalAmount,
			LowConfidence:        d.LowConfidence,
		})
	}

	return responses, nil
}

func (h GetReservationsQueryHandler) fetchCandidates(ctx context.Context) ([]services.ReservationCandidate, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			o.status,
			c.name,
			l.product_name,
			l.variant,
			l.quantity,
			o.created_at,
			o.expected_delivery_date,
			totals.total_amount
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		LEFT JOIN customers c ON c.id = o.customer_id
		LEFT JOIN (
			SELECT order_id, SUM(quantity * unit_price) AS total_amount
			FROM order_lines
			GROUP BY order_id
		) totals ON totals.order_id = l.order_id
		WHERE o.status IN (?, ?)
		ORDER BY o.created_at, l.id
	`, order.Draft, order.Confirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]services.ReservationCandidate, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			status       int
			customerName sql.NullString
			productName  string
			variant      sql.NullString
			quantity     int
			candidate    services.ReservationCandidate
			expectedDate sql.NullTime
			totalAmount  sql.NullFloat64
		)

		err = rows.Scan(
			&id,
			&status,
			&customerName,
			&productName,
			&variant,
			&quantity,
			&candidate.OrderCreatedAt,
			&expectedDate,
			&totalAmount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		candidate.OrderID = orderID
		candidate.OrderStatus = order.Status(status)
		candidate.ProductName = productName
		candidate.Variant = order.ParseVariant(variant.String)
		candidate.Quantity = quantity
		if customerName.Valid {
			candidate.CustomerName = &customerName.String
		}
		if expectedDate.Valid {
			candidate.ExpectedDeliveryDate = &expectedDate.Time
		}
		if totalAmount.Valid {
			candidate.OrderTotalAmount = &totalAmount.Float64
		}

		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
