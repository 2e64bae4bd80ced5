package queries

import (
	"errors"

	"perfumery/internal/pkg/guard"
)

var (
	ErrGetPerfumeQueryIsNotConstructed = errors.New(
		"GetPerfumeQuery must be created via NewGetPerfumeQuery constructor",
	)
	ErrIDIsInvalid = errors.New("id must be greater than 0")
)

// GetPerfumeQuery reads one bottle by id, whatever its status.
type GetPerfumeQuery struct {
	id int64

	guard guard.ConstructorGuard
}

func NewGetPerfumeQuery(id int64) (GetPerfumeQuery, error) {
	if id <= 0 {
		return GetPerfumeQuery{}, ErrIDIsInvalid
	}
	return GetPerfumeQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPerfumeQuery) Validate() error {
	return q.guard.Validate(ErrGetPerfumeQueryIsNotConstructed)
}

func (q GetPerfumeQuery) ID() int64 {
	return q.id
}
