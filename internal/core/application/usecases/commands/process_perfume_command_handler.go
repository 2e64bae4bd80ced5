package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"perfumery/internal/core/domain/model/journal"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/core/domain/model/replant"
	"perfumery/internal/core/domain/services"
	"perfumery/internal/core/ports"
)

// ProcessPerfumeCommandHandler runs one processing batch:
//
//  1. fetch the plants the plan needs from the plant supplier
//  2. bottle them and queue replants for high-potency plants, in one transaction
//  3. tell the supplier the plants were used
//
// A supply shortage writes nothing. Step 3 runs after commit, so its failure
// is reported to the log and the audit sink while the bottles are still
// returned.
type ProcessPerfumeCommandHandler struct {
	uowFactory ProcessingUoWFactory
	supplier   ports.PlantSupplier
	audit      ports.AuditSink
	logger     *slog.Logger
}

func NewProcessPerfumeCommandHandler(
	uowFactory ProcessingUoWFactory,
	supplier ports.PlantSupplier,
	audit ports.AuditSink,
	logger *slog.Logger,
) ProcessPerfumeCommandHandler {
	return ProcessPerfumeCommandHandler{
		uowFactory: uowFactory,
		supplier:   supplier,
		audit:      audit,
		logger:     logger.With("component", "processing"),
	}
}

func (h *ProcessPerfumeCommandHandler) Handle(ctx context.Context, cmd ProcessPerfumeCommand) ([]*perfume.Perfume, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	plan := cmd.Plan()
	sources, err := h.supplier.AvailablePlants(ctx, plan.PlantsNeeded)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	batch, err := plan.Produce(cmd.Name(), cmd.Kind(), sources, now)
	if err != nil {
		return nil, err
	}

	if err = h.persist(ctx, batch.Perfumes, batch.Replants, now); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "batch bottled",
		"name", cmd.Name(),
		"bottles", len(batch.Perfumes),
		"plants", len(batch.Consumed),
		"replants", len(batch.Replants),
	)

	if err = h.supplier.MarkUsed(ctx, batch.Consumed); err != nil {
		h.reportMarkUsedFailure(ctx, batch.Consumed, err)
	}

	return batch.Perfumes, nil
}

func (h *ProcessPerfumeCommandHandler) persist(
	ctx context.Context,
	bottles []*perfume.Perfume,
	replants []services.SourcePlant,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	perfumeRepo := uow.PerfumeRepository()
	for _, bottle := range bottles {
		if err := perfumeRepo.Add(ctx, bottle); err != nil {
			return err
		}
	}

	taskRepo := uow.ReplantTaskRepository()
	for _, src := range replants {
		task, err := replant.NewTask(kernel.NewUUID(), src.ID, src.Strength, now)
		if err != nil {
			return err
		}
		if err = taskRepo.Add(ctx, task); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *ProcessPerfumeCommandHandler) reportMarkUsedFailure(ctx context.Context, ids []int64, cause error) {
	h.logger.ErrorContext(ctx, "failed to mark plants as used", "plant_ids", ids, "error", cause)

	if h.audit == nil {
		return
	}

	h.audit.Publish(ctx, ports.AuditEvent{
		ID:        kernel.NewUUID(),
		Level:     journal.LevelError,
		Message:   fmt.Sprintf("plants %v were bottled but not marked as used: %v", ids, cause),
		Source:    "processing",
		Meta:      map[string]any{"plantIds": ids},
		Timestamp: time.Now().UTC(),
	})
}
