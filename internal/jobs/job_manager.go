package jobs

import (
	"fmt"
	"log/slog"

	"coldroute/internal/core/application/usecases/queries"
	"coldroute/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reservedCountsSnapshotJob *ReservedCountsSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query handler and snapshot store as dependencies to wire up the
// job execution.
func NewJobManager(
	reservedCountsHandler queries.GetReservedCountsQueryHandler,
	snapshotStore ports.ReservedCountSnapshotStore,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reservedCountsSnapshotJob: NewReservedCountsSnapshotJob(
			reservedCountsHandler, snapshotStore, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reservedCountsSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start reserved counts snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reservedCountsSnapshotJob.Stop()
}
