package commands

import (
	"errors"

	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/pkg/guard"
)

var ErrSendPackagesCommandIsNotConstructed = errors.New(
	"SendPackagesCommand must be created via NewSendPackagesCommand constructor",
)

// SendPackagesCommand sends up to count Packed packages through the
// distribution center that matches the caller role.
type SendPackagesCommand struct { //nolint:recvcheck //using for validation
	count int
	role  kernel.Role

	guard guard.ConstructorGuard
}

func NewSendPackagesCommand(count int, role kernel.Role) (SendPackagesCommand, error) {
	if count <= 0 {
		return SendPackagesCommand{}, ErrCountIsInvalid
	}

	return SendPackagesCommand{
		count: count,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SendPackagesCommand) Validate() error {
	return c.guard.Validate(ErrSendPackagesCommandIsNotConstructed)
}

func (c SendPackagesCommand) Count() int {
	return c.count
}

func (c SendPackagesCommand) Role() kernel.Role {
	return c.role
}
