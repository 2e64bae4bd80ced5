package commands

import (
	"context"
	"time"

	"perfumery/internal/core/domain/model/plant"
)

// PlantNewCommandHandler persists a new Planted specimen and journals it.
type PlantNewCommandHandler struct {
	uowFactory PlantUoWFactory
	journal    ProductionJournal
}

func NewPlantNewCommandHandler(uowFactory PlantUoWFactory, journal ProductionJournal) PlantNewCommandHandler {
	return PlantNewCommandHandler{
		uowFactory: uowFactory,
		journal:    journal,
	}
}

func (h *PlantNewCommandHandler) Handle(ctx context.Context, cmd PlantNewCommand) (*plant.Plant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	specimen, err := plant.NewPlant(cmd.Seed(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = addPlant(ctx, h.uowFactory, specimen); err != nil {
		return nil, err
	}

	h.journal.Info(ctx, "Planted %s with strength %s", specimen.CommonName(), specimen.Strength())
	return specimen, nil
}

func addPlant(ctx context.Context, factory PlantUoWFactory, specimen *plant.Plant) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PlantRepository().Add(ctx, specimen); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
