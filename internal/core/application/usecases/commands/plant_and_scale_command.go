package commands

import (
	"errors"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/pkg/guard"
)

var ErrPlantAndScaleCommandIsNotConstructed = errors.New(
	"PlantAndScaleCommand must be created via NewPlantAndScaleCommand constructor",
)

// PlantAndScaleCommand replants after a high-potency plant was consumed.
type PlantAndScaleCommand struct { //nolint:recvcheck //using for validation
	sourceStrength kernel.Strength

	guard guard.ConstructorGuard
}

func NewPlantAndScaleCommand(sourceStrength kernel.Strength) (PlantAndScaleCommand, error) {
	if err := sourceStrength.Validate(); err != nil {
		return PlantAndScaleCommand{}, errors.Join(ErrStrengthIsInvalid, err)
	}

	return PlantAndScaleCommand{
		sourceStrength: sourceStrength,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c PlantAndScaleCommand) Validate() error {
	return c.guard.Validate(ErrPlantAndScaleCommandIsNotConstructed)
}

func (c PlantAndScaleCommand) SourceStrength() kernel.Strength {
	return c.sourceStrength
}
