package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// KitchenJob simulates the kitchen working through the queue: on every tick
// the head order advances one status step. An order reaching Delivered leaves
// the queue, so over time the whole queue drains through the pipeline.
type KitchenJob struct {
	handler  commands.AdvanceOrderStatusCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewKitchenJob creates a job that advances the head order on the given cron
// spec (six-field, seconds resolution).
func NewKitchenJob(handler commands.AdvanceOrderStatusCommandHandler, cronSpec string, logger *slog.Logger) *KitchenJob {
	return &KitchenJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "kitchen_job"),
	}
}

// Start schedules the job. Ticks on an empty queue are no-ops.
func (j *KitchenJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceOrderStatusCommand()

		status, found, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Kitchen job failed to advance order", "error", handleErr)
			return
		}
		if found {
			j.logger.InfoContext(ctx, "Advanced head order", "status", status.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen job started", "cron", j.cronSpec)
	return nil
}

// Stop stops the kitchen job.
func (j *KitchenJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen job stopped")
}
