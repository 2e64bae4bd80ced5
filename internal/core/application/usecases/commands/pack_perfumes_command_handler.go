package commands

import (
	"context"
	"time"

	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/core/ports"
)

// PackPerfumesCommandHandler turns reserved bottles into storage packages.
// The reservation is strict and committed by processing before any package
// is written; a failure while packing leaves those bottles Reserved.
type PackPerfumesCommandHandler struct {
	uowFactory StoragePackageUoWFactory
	reserver   ports.PerfumeReserver
}

func NewPackPerfumesCommandHandler(uowFactory StoragePackageUoWFactory, reserver ports.PerfumeReserver) PackPerfumesCommandHandler {
	return PackPerfumesCommandHandler{
		uowFactory: uowFactory,
		reserver:   reserver,
	}
}

func (h *PackPerfumesCommandHandler) Handle(ctx context.Context, cmd PackPerfumesCommand) ([]*storagepackage.StoragePackage, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	perfumeIDs, err := h.reserver.Reserve(ctx, cmd.PerfumeName(), cmd.Count())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	packages := make([]*storagepackage.StoragePackage, 0, len(perfumeIDs))
	for _, id := range perfumeIDs {
		perfumeID := id
		pkg, pkgErr := storagepackage.NewStoragePackage(
			cmd.PerfumeName(), cmd.SenderAddress(), cmd.WarehouseID(), &perfumeID, now)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StoragePackageRepository()
	for _, pkg := range packages {
		if err = repo.Add(ctx, pkg); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return packages, nil
}
