package ports

import (
	"context"
	"time"
)

// ReservedCountSnapshot is one aggregated reservation bucket captured at a
// point in time.
type ReservedCountSnapshot struct {
	WarehouseID string
	ProductName string
	Size        string
	Reserved    int
	CapturedAt  time.Time
}

// ReservedCountSnapshotStore persists reserved-count snapshots so inventory
// views can subtract reservations without recomputing them per request.
type ReservedCountSnapshotStore interface {
	// Replace swaps the stored snapshot set for the given one atomically.
	Replace(ctx context.Context, snapshots []ReservedCountSnapshot) error
	// GetAll returns the current snapshot set sorted by warehouse, name, size.
	GetAll(ctx context.Context) ([]ReservedCountSnapshot, error)
}
