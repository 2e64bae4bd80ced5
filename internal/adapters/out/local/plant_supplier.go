package local

import (
	"context"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/application/usecases/queries"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/core/domain/services"
)

type availablePlantsHandler interface {
	Handle(ctx context.Context, query queries.GetAvailablePlantsQuery) ([]queries.PlantResponse, error)
}

type markPlantsUsedHandler interface {
	Handle(ctx context.Context, cmd commands.MarkPlantsUsedCommand) (int, error)
}

type plantAndScaleHandler interface {
	Handle(ctx context.Context, cmd commands.PlantAndScaleCommand) (*plant.Plant, error)
}

// PlantSupplier implements ports.PlantSupplier over the plant lifecycle
// handlers.
type PlantSupplier struct {
	available     availablePlantsHandler
	markUsed      markPlantsUsedHandler
	plantAndScale plantAndScaleHandler
}

func NewPlantSupplier(
	available availablePlantsHandler,
	markUsed markPlantsUsedHandler,
	plantAndScale plantAndScaleHandler,
) *PlantSupplier {
	return &PlantSupplier{
		available:     available,
		markUsed:      markUsed,
		plantAndScale: plantAndScale,
	}
}

func (s *PlantSupplier) AvailablePlants(ctx context.Context, count int) ([]services.SourcePlant, error) {
	query, err := queries.NewGetAvailablePlantsQuery(count)
	if err != nil {
		return nil, err
	}

	plants, err := s.available.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	sources := make([]services.SourcePlant, 0, len(plants))
	for _, p := range plants {
		sources = append(sources, services.SourcePlant{ID: p.ID, Strength: p.Strength})
	}
	return sources, nil
}

func (s *PlantSupplier) MarkUsed(ctx context.Context, ids []int64) error {
	cmd, err := commands.NewMarkPlantsUsedCommand(ids)
	if err != nil {
		return err
	}
	_, err = s.markUsed.Handle(ctx, cmd)
	return err
}

func (s *PlantSupplier) PlantAndScale(ctx context.Context, sourceStrength kernel.Strength) (int64, error) {
	cmd, err := commands.NewPlantAndScaleCommand(sourceStrength)
	if err != nil {
		return 0, err
	}

	specimen, err := s.plantAndScale.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}
	return specimen.ID(), nil
}
