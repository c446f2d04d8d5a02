package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"transport/internal/core/application/usecases/queries"
)

// OverdueReportJob periodically reports routes whose planned departure has
// passed without a carrier being dispatched. Runs every minute so dispatchers
// see stale orders quickly without hammering the database.
type OverdueReportJob struct {
	handler queries.GetOverdueRoutesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueReportJob creates a job that surfaces undispatched overdue routes.
func NewOverdueReportJob(handler queries.GetOverdueRoutesQueryHandler, logger *slog.Logger) *OverdueReportJob {
	return &OverdueReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_report_job"),
	}
}

// Start begins the overdue report job to run every minute.
func (j *OverdueReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOverdueRoutesQuery(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue report job misconfigured", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue report job failed", "error", err)
			return
		}

		for _, model := range overdue {
			j.logger.WarnContext(ctx, "Route overdue for dispatch",
				"routeId", model.ID.String(),
				"departureDate", model.DepartureDate,
				"requiredCarrierType", model.RequiredCarrierType.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue report job started (running every minute)")
	return nil
}

// Stop stops the overdue report job.
func (j *OverdueReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue report job stopped")
}
