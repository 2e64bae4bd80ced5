package queries

import (
	"errors"

	"perfumery/internal/pkg/guard"
)

var ErrGetProductionLogsQueryIsNotConstructed = errors.New(
	"GetProductionLogsQuery must be created via NewGetProductionLogsQuery constructor",
)

// GetProductionLogsQuery reads the production journal, most recent first.
// A limit of 0 returns every entry.
type GetProductionLogsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewGetProductionLogsQuery(limit int) (GetProductionLogsQuery, error) {
	if limit < 0 {
		return GetProductionLogsQuery{}, ErrCountIsInvalid
	}
	return GetProductionLogsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductionLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionLogsQueryIsNotConstructed)
}

func (q GetProductionLogsQuery) Limit() int {
	return q.limit
}
