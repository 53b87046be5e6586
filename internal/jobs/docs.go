// Package jobs provides scheduled background tasks for the logistics network.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic back-office operations of the network.
//
// # Available Jobs
//
// 1. SettlementJob - Runs daily at 02:00 to close the settlement period of
// every agency whose settlement weekday matches the current day.
// 2. OverdueSweepJob - Runs daily at 03:00 to flip pending settlements past
// their due date to overdue.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processSettlementsHandler, markOverdueHandler, logger)
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
// Both jobs run once per day. Settlement generation is idempotent per agency
// and week because an agency only settles on its configured weekday and the
// pass skips agencies already settled that day, so re-running the job is safe.
//
// # Error Handling
//
// Both jobs log failures and keep their schedule; a failed pass is retried
// naturally on the next day's run.
package jobs
