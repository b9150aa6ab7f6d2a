package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"coldroute/internal/core/application/usecases/queries"
	"coldroute/internal/core/ports"
)

// ReservedCountsSnapshotJob periodically recomputes reserved-count buckets
// from active orders and replaces the stored snapshot set. The snapshot
// table gives reporting tools a recent count without a full order scan.
type ReservedCountsSnapshotJob struct {
	handler queries.GetReservedCountsQueryHandler
	store   ports.ReservedCountSnapshotStore
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservedCountsSnapshotJob creates a new snapshot refresh job.
// Uses GetReservedCountsQueryHandler to compute the buckets every minute.
func NewReservedCountsSnapshotJob(
	handler queries.GetReservedCountsQueryHandler,
	store ports.ReservedCountSnapshotStore,
	logger *slog.Logger,
) *ReservedCountsSnapshotJob {
	return &ReservedCountsSnapshotJob{
		handler: handler,
		store:   store,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reserved_counts_snapshot_job"),
	}
}

// Start begins the snapshot refresh job to run at the top of every minute.
func (j *ReservedCountsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Reserved counts snapshot refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	// Prime the snapshot table so views have data before the first tick.
	ctx := context.Background()
	if err := j.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Initial reserved counts snapshot refresh failed", "error", err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reserved counts snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot refresh job.
func (j *ReservedCountsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reserved counts snapshot job stopped")
}

// Refresh recomputes the buckets once and replaces the stored snapshot set.
// Also invoked directly at startup so views have data before the first tick.
func (j *ReservedCountsSnapshotJob) Refresh(ctx context.Context) error {
	counts, err := j.handler.Handle(ctx, queries.NewGetReservedCountsQuery())
	if err != nil {
		return err
	}

	capturedAt := time.Now().UTC()
	snapshots := make([]ports.ReservedCountSnapshot, len(counts))
	for i, count := range counts {
		snapshots[i] = ports.ReservedCountSnapshot{
			WarehouseID: count.WarehouseID,
			ProductName: count.ProductName,
			Size:        count.Size,
			Reserved:    count.Reserved,
			CapturedAt:  capturedAt,
		}
	}

	return j.store.Replace(ctx, snapshots)
}
