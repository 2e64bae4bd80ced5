package commands

import (
	"errors"
	"strings"

	"perfumery/internal/pkg/guard"
)

var (
	ErrStorePackageCommandIsNotConstructed = errors.New(
		"StorePackageCommand must be created via NewStorePackageCommand constructor",
	)
	ErrPackageNameIsRequired   = errors.New("package name is required")
	ErrSenderAddressIsRequired = errors.New("sender address is required")
	ErrWarehouseIDIsInvalid    = errors.New("warehouse id must be greater than 0")
	ErrPerfumeIDIsInvalid      = errors.New("perfume id must be greater than 0")
)

// StorePackageCommand packs one storage package, optionally holding a perfume.
type StorePackageCommand struct { //nolint:recvcheck //using for validation
	name          string
	senderAddress string
	warehouseID   int64
	perfumeID     *int64

	guard guard.ConstructorGuard
}

func NewStorePackageCommand(name, senderAddress string, warehouseID int64, perfumeID *int64) (StorePackageCommand, error) {
	cmd := StorePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setSenderAddress(senderAddress),
		cmd.setWarehouseID(warehouseID),
		cmd.setPerfumeID(perfumeID),
	); err != nil {
		return StorePackageCommand{}, err
	}

	return cmd, nil
}

func (c StorePackageCommand) Validate() error {
	return c.guard.Validate(ErrStorePackageCommandIsNotConstructed)
}

func (c StorePackageCommand) Name() string {
	return c.name
}

func (c StorePackageCommand) SenderAddress() string {
	return c.senderAddress
}

func (c StorePackageCommand) WarehouseID() int64 {
	return c.warehouseID
}

func (c StorePackageCommand) PerfumeID() *int64 {
	if c.perfumeID == nil {
		return nil
	}
	id := *c.perfumeID
	return &id
}

func (c *StorePackageCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrPackageNameIsRequired
	}
	c.name = name
	return nil
}

func (c *StorePackageCommand) setSenderAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrSenderAddressIsRequired
	}
	c.senderAddress = address
	return nil
}

func (c *StorePackageCommand) setWarehouseID(id int64) error {
	if id <= 0 {
		return ErrWarehouseIDIsInvalid
	}
	c.warehouseID = id
	return nil
}

func (c *StorePackageCommand) setPerfumeID(id *int64) error {
	if id == nil {
		return nil
	}
	if *id <= 0 {
		return ErrPerfumeIDIsInvalid
	}
	v := *id
	c.perfumeID = &v
	return nil
}
