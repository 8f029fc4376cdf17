// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the driver dispatch service.
//
// # Available Jobs
//
// 1. PeriodResetJob - Rolls the fleet's daily, weekly, and monthly counters
// over at their period boundaries
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(resetPeriodCountersHandler, logger)
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
// The period reset job registers three schedules: "0 0 0 * * *" for the
// daily rollover, "0 0 0 * * 1" for the weekly rollover on Monday, and
// "0 0 0 1 * *" for the monthly rollover on the first of the month.
//
// # Error Handling
//
// Rollover failures are logged and retried at the next boundary; a failed
// reset leaves the previous period's counters in place rather than
// corrupting them.
package jobs
