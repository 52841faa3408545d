// Package jobs provides scheduled background tasks for the cakery backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DeliveryReminderJob - Runs daily to emit a delivery_reminder event for
// each of tomorrow's confirmed orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(tomorrowConfirmedHandler, notifier, schedule, logger)
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
// The reminder job defaults to "0 18 * * *" (18:00 daily) and can be
// overridden with the REMINDER_CRON environment variable.
//
// # Error Handling
//
// A failed query or a failed dispatch is logged and never aborts the pass;
// the remaining reminders of the batch still go out.
package jobs
