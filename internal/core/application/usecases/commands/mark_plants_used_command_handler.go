package commands

import (
	"context"
)

// MarkPlantsUsedCommandHandler skips ids that do not exist and returns the
// number of plants marked.
type MarkPlantsUsedCommandHandler struct {
	uowFactory PlantUoWFactory
	journal    ProductionJournal
}

func NewMarkPlantsUsedCommandHandler(uowFactory PlantUoWFactory, journal ProductionJournal) MarkPlantsUsedCommandHandler {
	return MarkPlantsUsedCommandHandler{
		uowFactory: uowFactory,
		journal:    journal,
	}
}

func (h *MarkPlantsUsedCommandHandler) Handle(ctx context.Context, cmd MarkPlantsUsedCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids := cmd.IDs()
	if len(ids) == 0 {
		return 0, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PlantRepository()
	plants, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	for _, p := range plants {
		if err = p.MarkProcessed(); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, p); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.journal.Info(ctx, "Marked %d plants as processed", len(plants))
	return len(plants), nil
}
