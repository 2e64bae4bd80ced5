package commands_test

import (
	"context"
	"testing"
	"time"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/storagepackage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func packedPackages(t *testing.T, ids ...int64) []*storagepackage.StoragePackage {
	t.Helper()
	packages := make([]*storagepackage.StoragePackage, 0, len(ids))
	for _, id := range ids {
		pkg, err := storagepackage.RestoreStoragePackage(id, "Nuit", "1 Rue de Paris", 1, nil,
			storagepackage.Packed, "", time.Now().UTC())
		require.NoError(t, err)
		packages = append(packages, pkg)
	}
	return packages
}

// batchUoW expects one committed distribution batch.
func batchUoW(ctx context.Context, size int, claimed []*storagepackage.StoragePackage) (*MockUoW, *MockStoragePackageRepository) {
	repo := new(MockStoragePackageRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoragePackageRepository").Return(repo).Once()
	repo.On("ClaimPacked", ctx, size).Return(claimed, nil).Once()
	for _, pkg := range claimed {
		repo.On("Update", ctx, pkg).Return(nil).Once()
	}
	if len(claimed) > 0 {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow, repo
}

func TestNewSendPackagesCommand(t *testing.T) {
	_, err := commands.NewSendPackagesCommand(0, kernel.RoleSeller)
	require.ErrorIs(t, err, commands.ErrCountIsInvalid)
}

func TestSendPackagesCommandHandler_Handle_DistributiveBatches(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSendPackagesCommand(5, kernel.RoleSalesManager)
	require.NoError(t, err)

	first, _ := batchUoW(ctx, 3, packedPackages(t, 1, 2, 3))
	second, _ := batchUoW(ctx, 2, packedPackages(t, 4, 5))
	pacer := &recordingPacer{}

	h := commands.NewSendPackagesCommandHandler(packageFactory{newUoWFactory(first, second)}, pacer, discardLogger())
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, sent, 5)
	for i, pkg := range sent {
		assert.Equal(t, int64(i+1), pkg.ID())
		assert.Equal(t, storagepackage.Sent, pkg.Status())
	}

	assert.Len(t, pacer.delays, 5)
	for _, d := range pacer.delays {
		assert.Equal(t, 500*time.Millisecond, d)
	}
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestSendPackagesCommandHandler_Handle_WarehouseOneByOne(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSendPackagesCommand(5, kernel.RoleSeller)

	uows := make([]*MockUoW, 0, 5)
	for id := int64(1); id <= 5; id++ {
		uow, _ := batchUoW(ctx, 1, packedPackages(t, id))
		uows = append(uows, uow)
	}
	pacer := &recordingPacer{}

	h := commands.NewSendPackagesCommandHandler(packageFactory{newUoWFactory(uows...)}, pacer, discardLogger())
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, sent, 5)

	assert.Len(t, pacer.delays, 5)
	for _, d := range pacer.delays {
		assert.Equal(t, 2500*time.Millisecond, d)
	}
	for _, uow := range uows {
		uow.AssertExpectations(t)
	}
}

func TestSendPackagesCommandHandler_Handle_PoolExhausted(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSendPackagesCommand(5, kernel.RoleSalesManager)

	first, _ := batchUoW(ctx, 3, packedPackages(t, 1, 2, 3))
	second, _ := batchUoW(ctx, 2, packedPackages(t, 4))
	third, _ := batchUoW(ctx, 1, nil)

	h := commands.NewSendPackagesCommandHandler(
		packageFactory{newUoWFactory(first, second, third)}, &recordingPacer{}, discardLogger())
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, sent, 4)
	third.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSendPackagesCommandHandler_Handle_InterruptedKeepsEarlierBatches(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSendPackagesCommand(5, kernel.RoleSalesManager)

	first, _ := batchUoW(ctx, 3, packedPackages(t, 1, 2, 3))

	interrupted := packedPackages(t, 4, 5)
	secondRepo := new(MockStoragePackageRepository)
	second := new(MockUoW)
	second.On("Begin", ctx).Return(nil).Once()
	second.On("StoragePackageRepository").Return(secondRepo).Once()
	secondRepo.On("ClaimPacked", ctx, 2).Return(interrupted, nil).Once()
	secondRepo.On("Update", ctx, interrupted[0]).Return(nil).Once()
	second.On("Rollback", ctx).Return(nil).Once()

	pacer := &recordingPacer{err: context.Canceled, failAt: 4}

	h := commands.NewSendPackagesCommandHandler(packageFactory{newUoWFactory(first, second)}, pacer, discardLogger())
	sent, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, sent, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{sent[0].ID(), sent[1].ID(), sent[2].ID()})
	second.AssertNotCalled(t, "Commit", mock.Anything)
	second.AssertExpectations(t)
	secondRepo.AssertExpectations(t)
}

func TestSendPackagesCommandHandler_Handle_CancelledBatchRevertsDelayedPackages(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSendPackagesCommand(3, kernel.RoleSalesManager)

	claimed := packedPackages(t, 1, 2, 3)
	repo := new(MockStoragePackageRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StoragePackageRepository").Return(repo).Once()
	repo.On("ClaimPacked", ctx, 3).Return(claimed, nil).Once()
	repo.On("Update", ctx, claimed[0]).Return(nil).Once()
	repo.On("Update", ctx, claimed[1]).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	pacer := &recordingPacer{err: context.Canceled, failAt: 2}

	h := commands.NewSendPackagesCommandHandler(packageFactory{newUoWFactory(uow)}, pacer, discardLogger())
	sent, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sent)
	assert.Len(t, pacer.delays, 2)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}
