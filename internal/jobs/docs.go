// Package jobs provides scheduled background tasks for the factory
// operations tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot cover.
//
// # Available Jobs
//
// 1. StaleShiftJob - Runs every minute to close shifts left open past the
// configured maximum duration
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(closeStaleShiftsHandler, maxShiftDuration, logger)
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
// The sweep uses the cron expression "0 * * * * *", firing at the top of
// every minute. Stale shifts are closed at sweep time with the end time
// clamped to be no earlier than the shift's start.
//
// # Error Handling
//
// A failing sweep is logged and retried on the next tick; the job never
// stops itself on command errors.
package jobs
