package services

import (
	"log/slog"
	"strings"
	"time"

	"coldroute/internal/core/domain/model/kernel"
	"coldroute/internal/core/domain/model/order"
	"coldroute/internal/pkg/normalize"
)

// ReservationQuery identifies the catalog item whose open reservations are
// being looked up. WarehouseID is optional; when set, only lines whose
// variant metadata carries that exact warehouse are considered.
type ReservationQuery struct {
	ProductName string
	SizeLabel   string
	WarehouseID string
}

// ReservationCandidate is one order line from an active order, joined with
// the order-level fields that end up on the matched detail.
type ReservationCandidate struct {
	OrderID              kernel.UUID
	OrderStatus          order.Status
	CustomerName         *string
	ProductName          string
	Variant              order.Variant
	Quantity             int
	OrderCreatedAt       time.Time
	ExpectedDeliveryDate *time.Time
	OrderTotalAmount     *float64
}

// ReservationDetail is a matched reservation: the line's quantity plus the
// order context a stock clerk needs to chase it down. LowConfidence marks
// matches produced by the size-only widening, where two unrelated products
// may share a size string.
type ReservationDetail struct {
	OrderID              kernel.UUID
	Status               order.Status
	CustomerName         *string
	Quantity             int
	ProductName          string
	Size                 string
	OrderCreatedAt       time.Time
	ExpectedDeliveryDate *time.Time
	OrderTotalAmount     *float64
	LowConfidence        bool
}

// ReservationMatcher is a domain service that finds which active order lines
// reserve stock for a given catalog item.
//
// Matching runs in three escalating tiers, each attempted only when the
// previous one produced zero results:
//  1. Size-exact: every line whose resolved size equals the query size.
//     Name similarity is computed for diagnostics but never rejects a match.
//  2. Token-overlap: size-exact lines whose name shares at least two
//     Hebrew/digit tokens with the query name, and whose door type (hinged
//     "פתיחה" vs sliding "הזזה") agrees with the query's when both are
//     identifiable.
//  3. Size-only widening: every size-exact line regardless of name, flagged
//     LowConfidence.
//
// All tiers apply the same warehouse filter: when the query names a
// warehouse, a line without parseable variant metadata carrying that exact
// warehouse_id is excluded. Warehouse-scoped lookups must not count
// unscoped reservations.
type ReservationMatcher struct {
	logger *slog.Logger
}

// NewReservationMatcher creates a new ReservationMatcher instance.
func NewReservationMatcher(logger *slog.Logger) ReservationMatcher {
	return ReservationMatcher{
		logger: logger.With("component", "reservation_matcher"),
	}
}

// Match returns the reservations held against the queried item, in candidate
// order. It never fails: malformed variant metadata only narrows which
// resolution fallbacks apply to that line.
func (m ReservationMatcher) Match(query ReservationQuery, candidates []ReservationCandidate) []ReservationDetail {
	queryName := normalize.Text(query.ProductName)
	querySize := normalize.Size(query.SizeLabel)
	querySimple := normalize.Simplify(queryName)

	m.logger.Debug("reservation lookup started",
		"productName", query.ProductName,
		"queryName", queryName,
		"querySize", querySize,
		"warehouseId", query.WarehouseID,
		"candidates", len(candidates))

	result := make([]ReservationDetail, 0)

	for _, c := range candidates {
		if !m.passesWarehouseFilter(c, query.WarehouseID) {
			continue
		}
		itemName := normalize.Text(c.ProductName)
		size := resolvedSize(c)

		nameMatch := strings.Contains(normalize.Simplify(itemName), querySimple) ||
			strings.Contains(querySimple, normalize.Simplify(itemName))
		m.logger.Debug("candidate considered",
			"orderId", c.OrderID.String(),
			"itemName", itemName,
			"size", size,
			"nameMatch", nameMatch)

		if size == querySize {
			result = append(result, m.detail(c, size, false))
		}
	}
	if len(result) > 0 {
		m.logger.Debug("reservation lookup matched by size", "count", len(result))
		return result
	}

	queryDoor := doorTypeOf(queryName)
	for _, c := range candidates {
		if !m.passesWarehouseFilter(c, query.WarehouseID) {
			continue
		}
		itemName := normalize.Text(c.ProductName)
		if resolvedSize(c) != querySize {
			continue
		}
		if tokenOverlap(itemName, queryName) < 2 {
			continue
		}
		itemDoor := doorTypeOf(itemName)
		if queryDoor != doorUnknown && itemDoor != doorUnknown && queryDoor != itemDoor {
			continue
		}
		result = append(result, m.detail(c, resolvedSize(c), false))
	}
	if len(result) > 0 {
		m.logger.Debug("reservation lookup matched by token overlap", "count", len(result))
		return result
	}

	for _, c := range candidates {
		if !m.passesWarehouseFilter(c, query.WarehouseID) {
			continue
		}
		size := resolvedSize(c)
		if size != querySize {
			continue
		}
		result = append(result, m.detail(c, size, true))
	}
	m.logger.Debug("reservation lookup widened to size only", "count", len(result))
	return result
}

func (m ReservationMatcher) passesWarehouseFilter(c ReservationCandidate, warehouseID string) bool {
	if warehouseID == "" {
		return true
	}
	id, ok := c.Variant.WarehouseID()
	return ok && id == warehouseID
}

func (m ReservationMatcher) detail(c ReservationCandidate, size string, lowConfidence bool) ReservationDetail {
	return ReservationDetail{
		OrderID:              c.OrderID,
		Status:               c.OrderStatus,
		CustomerName:         c.CustomerName,
		Quantity:             c.Quantity,
		ProductName:          c.ProductName,
		Size:                 size,
		OrderCreatedAt:       c.OrderCreatedAt,
		ExpectedDeliveryDate: c.ExpectedDeliveryDate,
		OrderTotalAmount:     c.OrderTotalAmount,
		LowConfidence:        lowConfidence,
	}
}

// resolvedSize mirrors line resolution: variant metadata first, then the
// product name itself. Some historical rows encode the size directly in the
// name.
func resolvedSize(c ReservationCandidate) string {
	if size := c.Variant.Size(); size != "" {
		return size
	}
	return normalize.Size(c.ProductName)
}

type doorType int

const (
	doorUnknown doorType = iota
	doorHinged
	doorSliding
)

// doorTypeOf recognizes the Hebrew door-type keywords. Hinged ("פתיחה") and
// sliding ("הזזה") units are functionally different products despite
// near-identical names.
func doorTypeOf(name string) doorType {
	switch {
	case strings.Contains(name, "פתיחה"):
		return doorHinged
	case strings.Contains(name, "הזזה"):
		return doorSliding
	default:
		return doorUnknown
	}
}

func tokenOverlap(a, b string) int {
	ta := normalize.Tokens(a)
	tb := make(map[string]bool)
	for _, t := range normalize.Tokens(b) {
		tb[t] = true
	}
	seen := make(map[string]bool, len(ta))
	overlap := 0
	for _, t := range ta {
		if tb[t] && !seen[t] {
			seen[t] = true
			overlap++
		}
	}
	return overlap
}
