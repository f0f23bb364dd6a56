// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run beside the request path.
//
// # Available Jobs
//
// 1. OrderStatsJob - Runs every minute to log a census of orders per status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager over the shared database handle
//	jobManager := jobs.NewJobManager(gormDB, logger)
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
// The stats job uses the cron expression "0 * * * * *" which fires at the
// top of every minute. The census is read-only and safe to run against the
// live database.
//
// # Error Handling
//
// Census failures are logged and skipped; the job keeps its schedule. A
// failed job start stops the application during boot rather than running
// without observability.
package jobs
