package commands

import (
	"errors"
	"strings"

	"perfumery/internal/pkg/guard"
)

var (
	ErrHarvestPlantsCommandIsNotConstructed = errors.New(
		"HarvestPlantsCommand must be created via NewHarvestPlantsCommand constructor",
	)
	ErrCommonNameIsRequired = errors.New("common name is required")
	ErrCountIsInvalid       = errors.New("count must be greater than 0")
)

// HarvestPlantsCommand harvests up to count Planted plants sharing a common name.
type HarvestPlantsCommand struct { //nolint:recvcheck //using for validation
	commonName string
	count      int

	guard guard.ConstructorGuard
}

func NewHarvestPlantsCommand(commonName string, count int) (HarvestPlantsCommand, error) {
	cmd := HarvestPlantsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCommonName(commonName),
		cmd.setCount(count),
	); err != nil {
		return HarvestPlantsCommand{}, err
	}

	return cmd, nil
}

func (c HarvestPlantsCommand) Validate() error {
	return c.guard.Validate(ErrHarvestPlantsCommandIsNotConstructed)
}

func (c HarvestPlantsCommand) CommonName() string {
	return c.commonName
}

func (c HarvestPlantsCommand) Count() int {
	return c.count
}

func (c *HarvestPlantsCommand) setCommonName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCommonNameIsRequired
	}
	c.commonName = name
	return nil
}

func (c *HarvestPlantsCommand) setCount(count int) error {
	if count <= 0 {
		return ErrCountIsInvalid
	}
	c.count = count
	return nil
}
