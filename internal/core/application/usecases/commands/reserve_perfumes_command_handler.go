package commands

import (
	"context"

	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/pkg/errs"
)

// ReservePerfumesCommandHandler is all-or-nothing: it claims the oldest
// Available bottles under row locks and reserves them only when enough were
// found.
type ReservePerfumesCommandHandler struct {
	uowFactory ProcessingUoWFactory
}

func NewReservePerfumesCommandHandler(uowFactory ProcessingUoWFactory) ReservePerfumesCommandHandler {
	return ReservePerfumesCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ReservePerfumesCommandHandler) Handle(ctx context.Context, cmd ReservePerfumesCommand) ([]*perfume.Perfume, error) {
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

	repo := uow.PerfumeRepository()
	bottles, err := repo.ClaimAvailable(ctx, cmd.Name(), cmd.Count())
	if err != nil {
		return nil, err
	}

	if len(bottles) < cmd.Count() {
		return nil, errs.NewInsufficientStockError("perfume", cmd.Count(), len(bottles))
	}

	for _, bottle := range bottles {
		if err = bottle.Reserve(); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, bottle); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return bottles, nil
}
