package commands

import (
	"errors"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPlantNewCommandIsNotConstructed = errors.New(
		"PlantNewCommand must be created via NewPlantNewCommand constructor",
	)
	ErrStrengthIsInvalid = errors.New("strength must be greater than 0")
)

// PlantNewCommand plants a specimen. Every seed field is optional; a nil
// strength is drawn at random from the nominal range.
type PlantNewCommand struct { //nolint:recvcheck //using for validation
	seed plant.Seed

	guard guard.ConstructorGuard
}

func NewPlantNewCommand(commonName, latinName, country string, strength *decimal.Decimal) (PlantNewCommand, error) {
	cmd := PlantNewCommand{
		seed: plant.Seed{
			CommonName: commonName,
			LatinName:  latinName,
			Country:    country,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setStrength(strength); err != nil {
		return PlantNewCommand{}, err
	}

	return cmd, nil
}

func (c PlantNewCommand) Validate() error {
	return c.guard.Validate(ErrPlantNewCommandIsNotConstructed)
}

func (c PlantNewCommand) Seed() plant.Seed {
	return c.seed
}

func (c *PlantNewCommand) setStrength(value *decimal.Decimal) error {
	if value == nil {
		return nil
	}

	s, err := kernel.NewStrength(*value)
	if err != nil {
		return errors.Join(ErrStrengthIsInvalid, err)
	}

	c.seed.Strength = &s
	return nil
}
