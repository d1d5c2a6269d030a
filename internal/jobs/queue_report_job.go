package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// queueReportCron fires at the top of every minute.
const queueReportCron = "0 * * * * *"

// QueueReportJob periodically logs the depth of the open-order queue, giving
// operators a heartbeat without an external metrics stack.
type QueueReportJob struct {
	handler queries.ListOpenOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueReportJob creates a job that reports queue depth once a minute.
func NewQueueReportJob(handler queries.ListOpenOrdersQueryHandler, logger *slog.Logger) *QueueReportJob {
	return &QueueReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "queue_report_job"),
	}
}

// Start schedules the report job.
func (j *QueueReportJob) Start() error {
	_, err := j.cron.AddFunc(queueReportCron, func() {
		ctx := context.Background()

		open, handleErr := j.handler.Handle(ctx, queries.NewListOpenOrdersQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Queue report job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Open order queue", "depth", len(open))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue report job started")
	return nil
}

// Stop stops the report job.
func (j *QueueReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue report job stopped")
}
