package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"depot/internal/core/application/depot"

	"github.com/robfig/cron/v3"
)

// QueueDrainer processes the head customer when one is queued. depot.Guarded
// implements it.
type QueueDrainer interface {
	ProcessNextIfQueued(ctx context.Context) (depot.ProcessResult, bool)
}

// QueueProcessingJob processes queued customers on a schedule.
type QueueProcessingJob struct {
	drainer  QueueDrainer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewQueueProcessingJob creates a job that serves one queued customer per tick of schedule.
func NewQueueProcessingJob(drainer QueueDrainer, schedule string, logger *slog.Logger) *QueueProcessingJob {
	return &QueueProcessingJob{
		drainer:  drainer,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "queue_processing_job"),
	}
}

// Start registers the job and starts the scheduler. It fails on an invalid
// schedule without starting anything.
func (j *QueueProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid process schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue processing job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single tick.
func (j *QueueProcessingJob) RunOnce(ctx context.Context) {
	result, ok := j.drainer.ProcessNextIfQueued(ctx)
	if !ok {
		return
	}

	j.logger.DebugContext(ctx, "Queue processing job served a customer",
		"outcome", result.Outcome.String(), "customer", result.Customer.Name())
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *QueueProcessingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Queue processing job stopped")
}
