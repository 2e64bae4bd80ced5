package commands

import (
	"errors"

	"perfumery/internal/pkg/guard"
)

var ErrReservePerfumesCommandIsNotConstructed = errors.New(
	"ReservePerfumesCommand must be created via NewReservePerfumesCommand constructor",
)

// ReservePerfumesCommand claims exactly count Available bottles of one name.
type ReservePerfumesCommand struct { //nolint:recvcheck //using for validation
	name  string
	count int

	guard guard.ConstructorGuard
}

func NewReservePerfumesCommand(name string, count int) (ReservePerfumesCommand, error) {
	cmd := ReservePerfumesCommand{
		name:  name,
		count: count,
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	if name == "" {
		errList = append(errList, ErrPerfumeNameIsRequired)
	}
	if count <= 0 {
		errList = append(errList, ErrCountIsInvalid)
	}
	if err := errors.Join(errList...); err != nil {
		return ReservePerfumesCommand{}, err
	}

	return cmd, nil
}

func (c ReservePerfumesCommand) Validate() error {
	return c.guard.Validate(ErrReservePerfumesCommandIsNotConstructed)
}

func (c ReservePerfumesCommand) Name() string {
	return c.name
}

func (c ReservePerfumesCommand) Count() int {
	return c.count
}
