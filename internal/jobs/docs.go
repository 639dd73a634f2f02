// Package jobs provides scheduled background tasks for the shopfloor system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusReportJob - Periodically logs work order counts per type and status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(statusSummaryHandler, "0 */5 * * * *", logger)
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
// The status report schedule is configured by the caller as a six-field cron
// expression (seconds included). Reporting is read-only; the production order
// lifecycle never depends on a job firing.
package jobs
