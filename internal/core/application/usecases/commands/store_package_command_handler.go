package commands

import (
	"context"
	"time"

	"perfumery/internal/core/domain/model/storagepackage"
)

type StorePackageCommandHandler struct {
	uowFactory StoragePackageUoWFactory
}

func NewStorePackageCommandHandler(uowFactory StoragePackageUoWFactory) StorePackageCommandHandler {
	return StorePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a Packed package; its serial is issued once the row exists.
func (h *StorePackageCommandHandler) Handle(ctx context.Context, cmd StorePackageCommand) (*storagepackage.StoragePackage, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pkg, err := storagepackage.NewStoragePackage(
		cmd.Name(), cmd.SenderAddress(), cmd.WarehouseID(), cmd.PerfumeID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StoragePackageRepository().Add(ctx, pkg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
