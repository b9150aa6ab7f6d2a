// Package snapshotrepo persists reserved-count snapshots captured by the
// background refresh job. The snapshot table is a plain read model, not a
// domain aggregate: rows are replaced wholesale on every refresh.
package snapshotrepo

import (
	"time"

	"coldroute/internal/core/ports"
)

// ReservedCountSnapshotDTO represents one stored reservation bucket.
type ReservedCountSnapshotDTO struct {
	WarehouseID string    `gorm:"type:varchar(255);primaryKey"`
	ProductName string    `gorm:"type:varchar(512);primaryKey"`
	Size        string    `gorm:"type:varchar(255);primaryKey"`
	Reserved    int       `gorm:"not null"`
	CapturedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for reserved-count snapshots.
func (ReservedCountSnapshotDTO) TableName() string {
	return "reserved_count_snapshots"
}

func fromSnapshot(s ports.ReservedCountSnapshot) ReservedCountSnapshotDTO {
	return ReservedCountSnapshotDTO{
		WarehouseID: s.WarehouseID,
		ProductName: s.ProductName,
		Size:        s.Size,
		Reserved:    s.Reserved,
		CapturedAt:  s.CapturedAt,
	}
}

func toSnapshot(dto ReservedCountSnapshotDTO) ports.ReservedCountSnapshot {
	return ports.ReservedCountSnapshot{
		WarehouseID: dto.WarehouseID,
		ProductName: dto.ProductName,
		Size:        dto.Size,
		Reserved:    dto.Reserved,
		CapturedAt:  dto.CapturedAt,
	}
}
