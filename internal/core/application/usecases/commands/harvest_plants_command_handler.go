package commands

import (
	"context"

	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/pkg/errs"
)

// HarvestPlantsCommandHandler is lenient: it harvests whatever matches, up
// to the requested count, and fails only when nothing matches.
type HarvestPlantsCommandHandler struct {
	uowFactory PlantUoWFactory
	journal    ProductionJournal
}

func NewHarvestPlantsCommandHandler(uowFactory PlantUoWFactory, journal ProductionJournal) HarvestPlantsCommandHandler {
	return HarvestPlantsCommandHandler{
		uowFactory: uowFactory,
		journal:    journal,
	}
}

func (h *HarvestPlantsCommandHandler) Handle(ctx context.Context, cmd HarvestPlantsCommand) ([]*plant.Plant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PlantRepository()
	plants, err := repo.ClaimPlanted(ctx, cmd.CommonName(), cmd.Count())
	if err != nil {
		return nil, err
	}

	if len(plants) == 0 {
		return nil, errs.NewInsufficientStockError("plant", cmd.Count(), 0)
	}

	for _, p := range plants {
		if err = p.Harvest(); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.journal.Info(ctx, "Harvested %d of %d %s", len(plants), cmd.Count(), cmd.CommonName())
	return plants, nil
}
