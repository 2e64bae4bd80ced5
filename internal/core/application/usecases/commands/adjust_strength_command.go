package commands

import (
	"errors"

	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAdjustStrengthCommandIsNotConstructed = errors.New(
		"AdjustStrengthCommand must be created via NewAdjustStrengthCommand constructor",
	)
	ErrPlantIDIsInvalid = errors.New("plant id must be greater than 0")
)

// AdjustStrengthCommand changes the strength of one plant by a percentage,
// either increasing it (inc) or scaling it (scale).
type AdjustStrengthCommand struct { //nolint:recvcheck //using for validation
	plantID int64
	value   decimal.Decimal
	mode    plant.AdjustmentMode

	guard guard.ConstructorGuard
}

func NewAdjustStrengthCommand(plantID int64, value decimal.Decimal, mode string) (AdjustStrengthCommand, error) {
	cmd := AdjustStrengthCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlantID(plantID),
		cmd.setMode(mode),
	); err != nil {
		return AdjustStrengthCommand{}, err
	}

	return cmd, nil
}

func (c AdjustStrengthCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStrengthCommandIsNotConstructed)
}

func (c AdjustStrengthCommand) PlantID() int64 {
	return c.plantID
}

func (c AdjustStrengthCommand) Value() decimal.Decimal {
	return c.value
}

func (c AdjustStrengthCommand) Mode() plant.AdjustmentMode {
	return c.mode
}

func (c *AdjustStrengthCommand) setPlantID(id int64) error {
	if id <= 0 {
		return ErrPlantIDIsInvalid
	}
	c.plantID = id
	return nil
}

func (c *AdjustStrengthCommand) setMode(raw string) error {
	mode, err := plant.ParseAdjustmentMode(raw)
	if err != nil {
		return err
	}
	c.mode = mode
	return nil
}
