package commands

import (
	"context"
	"time"

	"perfumery/internal/core/domain/model/plant"
)

// PlantAndScaleCommandHandler plants a default specimen whose strength is
// derived from the source by kernel.Strength.Offspring.
type PlantAndScaleCommandHandler struct {
	uowFactory PlantUoWFactory
	journal    ProductionJournal
}

func NewPlantAndScaleCommandHandler(uowFactory PlantUoWFactory, journal ProductionJournal) PlantAndScaleCommandHandler {
	return PlantAndScaleCommandHandler{
		uowFactory: uowFactory,
		journal:    journal,
	}
}

func (h *PlantAndScaleCommandHandler) Handle(ctx context.Context, cmd PlantAndScaleCommand) (*plant.Plant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	source := cmd.SourceStrength()
	offspring := source.Offspring()

	specimen, err := plant.NewPlant(plant.Seed{Strength: &offspring}, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = addPlant(ctx, h.uowFactory, specimen); err != nil {
		return nil, err
	}

	h.journal.Info(ctx, "Replanted plant #%d with strength %s from source strength %s",
		specimen.ID(), offspring, source)
	return specimen, nil
}
