package commands

import (
	"errors"

	"perfumery/internal/pkg/guard"
)

var ErrPackPerfumesCommandIsNotConstructed = errors.New(
	"PackPerfumesCommand must be created via NewPackPerfumesCommand constructor",
)

// PackPerfumesCommand reserves count bottles of one perfume and packs each
// into its own storage package named after the perfume.
type PackPerfumesCommand struct { //nolint:recvcheck //using for validation
	perfumeName   string
	count         int
	senderAddress string
	warehouseID   int64

	guard guard.ConstructorGuard
}

func NewPackPerfumesCommand(perfumeName string, count int, senderAddress string, warehouseID int64) (PackPerfumesCommand, error) {
	var errList []error
	if perfumeName == "" {
		errList = append(errList, ErrPerfumeNameIsRequired)
	}
	if count <= 0 {
		errList = append(errList, ErrCountIsInvalid)
	}
	if senderAddress == "" {
		errList = append(errList, ErrSenderAddressIsRequired)
	}
	if warehouseID <= 0 {
		errList = append(errList, ErrWarehouseIDIsInvalid)
	}
	if err := errors.Join(errList...); err != nil {
		return PackPerfumesCommand{}, err
	}

	return PackPerfumesCommand{
		perfumeName:   perfumeName,
		count:         count,
		senderAddress: senderAddress,
		warehouseID:   warehouseID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c PackPerfumesCommand) Validate() error {
	return c.guard.Validate(ErrPackPerfumesCommandIsNotConstructed)
}

func (c PackPerfumesCommand) PerfumeName() string   { return c.perfumeName }
func (c PackPerfumesCommand) Count() int            { return c.count }
func (c PackPerfumesCommand) SenderAddress() string { return c.senderAddress }
func (c PackPerfumesCommand) WarehouseID() int64    { return c.warehouseID }
