package commands

import (
	"errors"
	"slices"

	"perfumery/internal/pkg/guard"
)

var ErrMarkPlantsUsedCommandIsNotConstructed = errors.New(
	"MarkPlantsUsedCommand must be created via NewMarkPlantsUsedCommand constructor",
)

// MarkPlantsUsedCommand forces plants to Processed. An empty id list is valid
// and does nothing. Non-positive ids can never name a plant and are dropped
// like any other unknown id.
type MarkPlantsUsedCommand struct { //nolint:recvcheck //using for validation
	ids []int64

	guard guard.ConstructorGuard
}

func NewMarkPlantsUsedCommand(ids []int64) (MarkPlantsUsedCommand, error) {
	unique := slices.DeleteFunc(slices.Clone(ids), func(id int64) bool { return id <= 0 })
	slices.Sort(unique)

	return MarkPlantsUsedCommand{
		ids:   slices.Compact(unique),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c MarkPlantsUsedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPlantsUsedCommandIsNotConstructed)
}

func (c MarkPlantsUsedCommand) IDs() []int64 {
	return slices.Clone(c.ids)
}
