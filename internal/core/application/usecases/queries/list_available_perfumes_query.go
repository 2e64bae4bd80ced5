package queries

import (
	"errors"
	"time"

	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/pkg/guard"
)

var ErrListAvailablePerfumesQueryIsNotConstructed = errors.New(
	"ListAvailablePerfumesQuery must be created via NewListAvailablePerfumesQuery constructor",
)

// ListAvailablePerfumesQuery lists every Available bottle in creation order.
type ListAvailablePerfumesQuery struct {
	guard guard.ConstructorGuard
}

func NewListAvailablePerfumesQuery() ListAvailablePerfumesQuery {
	return ListAvailablePerfumesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAvailablePerfumesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailablePerfumesQueryIsNotConstructed)
}

// PerfumeResponse is the read model of one bottle.
type PerfumeResponse struct {
	ID             int64
	Name           string
	Type           perfume.Type
	NetVolumeMl    int
	Serial         string
	SourcePlantIDs []int64
	Status         perfume.Status
	CreatedAt      time.Time
	ExpiresAt      time.Time
}
