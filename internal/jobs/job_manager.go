package jobs

import (
	"fmt"
	"log/slog"

	"transport/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueReportJob *OverdueReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueRoutesHandler queries.GetOverdueRoutesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueReportJob: NewOverdueReportJob(overdueRoutesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueReportJob.Stop()
}
