package jobs

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusReportJob periodically logs how many work orders sit in each status,
// per order type. It is observability only: no state is mutated, and the
// lifecycle engine does not depend on it running.
type StatusReportJob struct {
	handler  queries.GetWorkOrderStatusSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusReportJob creates a job that reports the work order status summary
// on the given cron schedule (with a seconds field, e.g. "0 */5 * * * *").
func NewStatusReportJob(
	handler queries.GetWorkOrderStatusSummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *StatusReportJob {
	return &StatusReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_report_job"),
	}
}

// Start begins the status report job on its configured schedule.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		summary, err := j.handler.Handle(ctx, queries.NewGetWorkOrderStatusSummaryQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
			return
		}

		for _, bucket := range summary {
			j.logger.InfoContext(ctx, "work order status report",
				"orderType", bucket.OrderType,
				"status", bucket.Status,
				"count", bucket.Count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the status report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}
