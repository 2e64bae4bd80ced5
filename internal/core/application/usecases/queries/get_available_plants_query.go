package queries

import (
	"errors"
	"time"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/pkg/guard"
)

// DefaultAvailablePlantsCount is used when the caller does not ask for a count.
const DefaultAvailablePlantsCount = 50

var (
	ErrGetAvailablePlantsQueryIsNotConstructed = errors.New(
		"GetAvailablePlantsQuery must be created via NewGetAvailablePlantsQuery constructor",
	)
	ErrCountIsInvalid = errors.New("count must be greater than 0")
)

// GetAvailablePlantsQuery lists up to count Planted plants in arrival order.
// It is a plain read and claims nothing.
//
// Example:
//
//	query, err := NewGetAvailablePlantsQuery(10)
//	if err != nil {
//	    return err
//	}
//	plants, err := handler.Handle(ctx, query)
type GetAvailablePlantsQuery struct {
	count int

	guard guard.ConstructorGuard
}

func NewGetAvailablePlantsQuery(count int) (GetAvailablePlantsQuery, error) {
	if count <= 0 {
		return GetAvailablePlantsQuery{}, ErrCountIsInvalid
	}
	return GetAvailablePlantsQuery{count: count, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAvailablePlantsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePlantsQueryIsNotConstructed)
}

func (q GetAvailablePlantsQuery) Count() int {
	return q.count
}

// PlantResponse is the read model of a plant.
type PlantResponse struct {
	ID         int64
	CommonName string
	LatinName  string
	Country    string
	Strength   kernel.Strength
	Status     plant.Status
	PlantedAt  time.Time
}
