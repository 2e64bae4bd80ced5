package local

import (
	"context"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/domain/model/perfume"
)

type reservePerfumesHandler interface {
	Handle(ctx context.Context, cmd commands.ReservePerfumesCommand) ([]*perfume.Perfume, error)
}

// PerfumeReserver implements ports.PerfumeReserver.
type PerfumeReserver struct {
	reserve reservePerfumesHandler
}

func NewPerfumeReserver(reserve reservePerfumesHandler) *PerfumeReserver {
	return &PerfumeReserver{reserve: reserve}
}

func (r *PerfumeReserver) Reserve(ctx context.Context, name string, count int) ([]int64, error) {
	cmd, err := commands.NewReservePerfumesCommand(name, count)
	if err != nil {
		return nil, err
	}

	bottles, err := r.reserve.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(bottles))
	for _, b := range bottles {
		ids = append(ids, b.ID())
	}
	return ids, nil
}
