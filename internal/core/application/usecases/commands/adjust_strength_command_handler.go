package commands

import (
	"context"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/plant"
)

// AdjustStrengthCommandHandler applies a strength adjustment and journals
// the result. Results above kernel.StrengthThreshold also get a warning.
type AdjustStrengthCommandHandler struct {
	uowFactory PlantUoWFactory
	journal    ProductionJournal
}

func NewAdjustStrengthCommandHandler(uowFactory PlantUoWFactory, journal ProductionJournal) AdjustStrengthCommandHandler {
	return AdjustStrengthCommandHandler{
		uowFactory: uowFactory,
		journal:    journal,
	}
}

func (h *AdjustStrengthCommandHandler) Handle(ctx context.Context, cmd AdjustStrengthCommand) (*plant.Plant, error) {
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
	specimen, err := repo.Get(ctx, cmd.PlantID())
	if err != nil {
		return nil, err
	}

	previous := specimen.Strength()
	adjusted, err := specimen.AdjustStrength(cmd.Mode(), cmd.Value())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, specimen); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.journal.Info(ctx, "Adjusted strength of %s #%d from %s to %s (%s %s%%)",
		specimen.CommonName(), specimen.ID(), previous, adjusted, cmd.Mode(), cmd.Value().String())
	if adjusted.ExceedsThreshold() {
		h.journal.Warning(ctx, "Strength of %s #%d is %s, above %s",
			specimen.CommonName(), specimen.ID(), adjusted, kernel.StrengthThreshold.StringFixed(2))
	}

	return specimen, nil
}
