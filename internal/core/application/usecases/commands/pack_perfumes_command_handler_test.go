package commands_test

import (
	"errors"
	"testing"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPackPerfumesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPackPerfumesCommand("Nuit", 2, "1 Rue de Paris", 4)
	require.NoError(t, err)

	reserver := new(MockPerfumeReserver)
	repo := new(MockStoragePackageRepository)
	uow := new(MockUoW)
	mock.InOrder(
		reserver.On("Reserve", ctx, "Nuit", 2).Return([]int64{10, 11}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoragePackageRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*storagepackage.StoragePackage")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPackPerfumesCommandHandler(packageFactory{newUoWFactory(uow)}, reserver)
	packages, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, packages, 2)

	for i, want := range []int64{10, 11} {
		assert.Equal(t, "Nuit", packages[i].Name())
		assert.Equal(t, storagepackage.Packed, packages[i].Status())
		require.NotNil(t, packages[i].PerfumeID())
		assert.Equal(t, want, *packages[i].PerfumeID())
	}
	reserver.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPackPerfumesCommandHandler_Handle_ReservationShortage(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPackPerfumesCommand("Nuit", 5, "1 Rue de Paris", 4)

	reserver := new(MockPerfumeReserver)
	reserver.On("Reserve", ctx, "Nuit", 5).Return(nil, errs.NewInsufficientStockError("perfume", 5, 1))

	h := commands.NewPackPerfumesCommandHandler(packageFactory{newUoWFactory()}, reserver)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
}

func TestPackPerfumesCommandHandler_Handle_AddFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPackPerfumesCommand("Nuit", 1, "1 Rue de Paris", 4)
	dbErr := errors.New("insert failed")

	reserver := new(MockPerfumeReserver)
	repo := new(MockStoragePackageRepository)
	uow := new(MockUoW)
	reserver.On("Reserve", ctx, "Nuit", 1).Return([]int64{10}, nil)
	uow.On("Begin", ctx).Return(nil)
	uow.On("StoragePackageRepository").Return(repo)
	repo.On("Add", ctx, mock.Anything).Return(dbErr)
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewPackPerfumesCommandHandler(packageFactory{newUoWFactory(uow)}, reserver)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, dbErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
