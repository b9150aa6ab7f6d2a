// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. ReservedCountsSnapshotJob - Runs every minute to recompute reservation
// buckets from active orders and replace the stored snapshot set
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reservedCountsHandler, snapshotStore, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The snapshot job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Reservation data tolerates a minute of staleness; the
// refresh is also invoked once at startup so views have data immediately.
//
// # Error Handling
//
// - A failed refresh is logged and retried on the next tick; the previous
// snapshot set stays in place
// - Failed job starts will stop any already running jobs
package jobs
