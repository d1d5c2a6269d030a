package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenJob     *KitchenJob
	queueReportJob *QueueReportJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes use case handlers as dependencies to wire up job execution.
func NewJobManager(
	advanceOrderHandler commands.AdvanceOrderStatusCommandHandler,
	listOpenOrdersHandler queries.ListOpenOrdersQueryHandler,
	kitchenTickCron string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenJob:     NewKitchenJob(advanceOrderHandler, kitchenTickCron, logger),
		queueReportJob: NewQueueReportJob(listOpenOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen job: %w", err)
	}

	if err := jm.queueReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.kitchenJob.Stop()
		return fmt.Errorf("failed to start queue report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kitchenJob.Stop()
	jm.queueReportJob.Stop()
}
