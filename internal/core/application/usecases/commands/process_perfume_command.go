package commands

import (
	"errors"
	"strings"

	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/core/domain/services"
	"perfumery/internal/pkg/guard"
)

var (
	ErrProcessPerfumeCommandIsNotConstructed = errors.New(
		"ProcessPerfumeCommand must be created via NewProcessPerfumeCommand constructor",
	)
	ErrPerfumeNameIsRequired = errors.New("perfume name is required")
)

// ProcessPerfumeCommand bottles a batch of identical perfumes.
type ProcessPerfumeCommand struct { //nolint:recvcheck //using for validation
	name string
	kind perfume.Type
	plan services.ProductionPlan

	guard guard.ConstructorGuard
}

func NewProcessPerfumeCommand(name, kind string, bottles, volumePerBottleMl int) (ProcessPerfumeCommand, error) {
	cmd := ProcessPerfumeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setKind(kind),
		cmd.setPlan(bottles, volumePerBottleMl),
	); err != nil {
		return ProcessPerfumeCommand{}, err
	}

	return cmd, nil
}

func (c ProcessPerfumeCommand) Validate() error {
	return c.guard.Validate(ErrProcessPerfumeCommandIsNotConstructed)
}

func (c ProcessPerfumeCommand) Name() string {
	return c.name
}

func (c ProcessPerfumeCommand) Kind() perfume.Type {
	return c.kind
}

// Plan is the resource accounting derived from bottles and volume.
func (c ProcessPerfumeCommand) Plan() services.ProductionPlan {
	return c.plan
}

func (c *ProcessPerfumeCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrPerfumeNameIsRequired
	}
	c.name = name
	return nil
}

func (c *ProcessPerfumeCommand) setKind(raw string) error {
	kind, err := perfume.ParseType(raw)
	if err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *ProcessPerfumeCommand) setPlan(bottles, volumePerBottleMl int) error {
	plan, err := services.PlanProduction(bottles, volumePerBottleMl)
	if err != nil {
		return err
	}
	c.plan = plan
	return nil
}
