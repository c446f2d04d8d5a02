// Package jobs provides scheduled background tasks for the transport service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for route coordination.
//
// # Available Jobs
//
// 1. OverdueReportJob - Runs every minute to report routes still awaiting
// dispatch past their planned departure date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueRoutesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job only logs; it never mutates state, so a failed run is safe
// to skip until the next tick.
package jobs
