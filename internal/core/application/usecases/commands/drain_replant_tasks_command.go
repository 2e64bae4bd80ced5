package commands

import (
	"errors"

	"perfumery/internal/pkg/guard"
)

const DefaultReplantBatchSize = 10

var ErrDrainReplantTasksCommandIsNotConstructed = errors.New(
	"DrainReplantTasksCommand must be created via NewDrainReplantTasksCommand constructor",
)

// DrainReplantTasksCommand works off up to batchSize pending replant tasks.
type DrainReplantTasksCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewDrainReplantTasksCommand(batchSize int) (DrainReplantTasksCommand, error) {
	if batchSize <= 0 {
		return DrainReplantTasksCommand{}, ErrCountIsInvalid
	}

	return DrainReplantTasksCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DrainReplantTasksCommand) Validate() error {
	return c.guard.Validate(ErrDrainReplantTasksCommandIsNotConstructed)
}

func (c DrainReplantTasksCommand) BatchSize() int {
	return c.batchSize
}
