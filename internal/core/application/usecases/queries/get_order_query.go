package queries

import (
	"errors"

	"perfumery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	id int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id int64) (GetOrderQuery, error) {
	if id <= 0 {
		return GetOrderQuery{}, ErrIDIsInvalid
	}
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ID() int64 {
	return q.id
}
