package jobs

import (
	"context"
	"log/slog"

	"perfumery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultReplantSchedule drains the replant queue every five seconds.
	DefaultReplantSchedule = "*/5 * * * * *"

	// DefaultReplantBatchSize is the number of tasks claimed per run.
	DefaultReplantBatchSize = 10
)

type replantDrainer interface {
	Handle(ctx context.Context, cmd commands.DrainReplantTasksCommand) (commands.DrainResult, error)
}

type replantRecorder interface {
	ReplantTasks(done, retried, failed int)
}

// ReplantJob periodically replants the high-potency plants consumed by
// processing. Overlapping runs are skipped, so a slow plant supplier never
// leads to two drains claiming in parallel.
type ReplantJob struct {
	handler   replantDrainer
	recorder  replantRecorder
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewReplantJob(
	handler replantDrainer,
	recorder replantRecorder,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *ReplantJob {
	if schedule == "" {
		schedule = DefaultReplantSchedule
	}
	if batchSize <= 0 {
		batchSize = DefaultReplantBatchSize
	}

	return &ReplantJob{
		handler:   handler,
		recorder:  recorder,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "replant_job"),
	}
}

// Start registers the drain on the schedule and starts the scheduler.
func (j *ReplantJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Replant job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Stop stops the scheduler and waits for a running drain to finish or ctx
// to be done.
func (j *ReplantJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.logger.InfoContext(ctx, "Replant job stopped")
}

func (j *ReplantJob) run(ctx context.Context) {
	cmd, err := commands.NewDrainReplantTasksCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Replant job misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Replant job failed", "error", err)
		return
	}

	if j.recorder != nil {
		j.recorder.ReplantTasks(result.Done, result.Retried, result.Failed)
	}
	if result.Done+result.Retried+result.Failed > 0 {
		j.logger.InfoContext(ctx, "Replant queue drained",
			"done", result.Done, "retried", result.Retried, "failed", result.Failed)
	}
}
