package snapshotrepo

import (
	"context"

	"gorm.io/gorm"

	"coldroute/internal/core/ports"
)

// GormReservedCountSnapshotStore implements ReservedCountSnapshotStore using GORM.
type GormReservedCountSnapshotStore struct {
	db *gorm.DB
}

// NewGormReservedCountSnapshotStore creates a new GORM snapshot store.
func NewGormReservedCountSnapshotStore(db *gorm.DB) *GormReservedCountSnapshotStore {
	return &GormReservedCountSnapshotStore{db: db}
}

// Replace swaps the stored snapshot set atomically. Readers never observe a
// half-written refresh.
func (s *GormReservedCountSnapshotStore) Replace(
	ctx context.Context, snapshots []ports.ReservedCountSnapshot,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ReservedCountSnapshotDTO{}).Error; err != nil {
			return err
		}

		if len(snapshots) == 0 {
			return nil
		}

		dtos := make([]ReservedCountSnapshotDTO, len(snapshots))
		for i, snapshot := range snapshots {
			dtos[i] = fromSnapshot(snapshot)
		}
		return tx.Create(&dtos).Error
	})
}

// GetAll returns the current snapshot set sorted by warehouse, name, size.
func (s *GormReservedCountSnapshotStore) GetAll(
	ctx context.Context,
) ([]ports.ReservedCountSnapshot, error) {
	var dtos []ReservedCountSnapshotDTO
	err := s.db.WithContext(ctx).
		Order("warehouse_id, product_name, size").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	snapshots := make([]ports.ReservedCountSnapshot, len(dtos))
	for i, dto := range dtos {
		snapshots[i] = toSnapshot(dto)
	}
	return snapshots, nil
}
