package commands

import (
	"context"
	"log/slog"
	"time"

	"perfumery/internal/core/domain/model/replant"
	"perfumery/internal/core/ports"
)

// DrainResult counts what happened to the claimed tasks.
type DrainResult struct {
	Done    int
	Retried int
	Failed  int
}

// DrainReplantTasksCommandHandler asks the plant supplier to replant every
// claimed task. A failed replant is recorded on the task and retried on a
// later run until replant.MaxAttempts; it never fails the drain itself.
//
// Delivery is at least once. The supplier commits the offspring plant on its
// own, so when saving the claimed tasks fails afterwards the whole batch rolls
// back to Pending and the next run plants those offspring again.
type DrainReplantTasksCommandHandler struct {
	uowFactory ReplantTaskUoWFactory
	supplier   ports.PlantSupplier
	logger     *slog.Logger
}

func NewDrainReplantTasksCommandHandler(
	uowFactory ReplantTaskUoWFactory,
	supplier ports.PlantSupplier,
	logger *slog.Logger,
) DrainReplantTasksCommandHandler {
	return DrainReplantTasksCommandHandler{
		uowFactory: uowFactory,
		supplier:   supplier,
		logger:     logger.With("component", "replant"),
	}
}

func (h *DrainReplantTasksCommandHandler) Handle(ctx context.Context, cmd DrainReplantTasksCommand) (DrainResult, error) {
	var result DrainResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReplantTaskRepository()
	tasks, err := repo.ClaimPending(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}

	for _, task := range tasks {
		h.attempt(ctx, task, &result)
		if err = repo.Update(ctx, task); err != nil {
			return DrainResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return DrainResult{}, err
	}

	return result, nil
}

func (h *DrainReplantTasksCommandHandler) attempt(ctx context.Context, task *replant.Task, result *DrainResult) {
	plantID, err := h.supplier.PlantAndScale(ctx, task.SourceStrength())
	now := time.Now().UTC()

	if err == nil {
		_ = task.Complete(now)
		result.Done++
		h.logger.InfoContext(ctx, "replant completed",
			"task_id", task.ID().String(), "source_plant_id", task.SourcePlantID(), "plant_id", plantID)
		return
	}

	_ = task.RecordFailure(err, now)
	if task.Status() == replant.Failed {
		result.Failed++
		h.logger.ErrorContext(ctx, "replant abandoned",
			"task_id", task.ID().String(), "source_plant_id", task.SourcePlantID(),
			"attempts", task.Attempts(), "error", err)
		return
	}

	result.Retried++
	h.logger.WarnContext(ctx, "replant failed, will retry",
		"task_id", task.ID().String(), "source_plant_id", task.SourcePlantID(),
		"attempts", task.Attempts(), "error", err)
}
