package commands_test

import (
	"errors"
	"testing"
	"time"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/replant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingTask(t *testing.T, sourceID int64, strength string, attempts int) *replant.Task {
	t.Helper()
	now := time.Now().UTC()
	task, err := replant.RestoreTask(kernel.NewUUID(), sourceID, mustStrength(t, strength),
		replant.Pending, attempts, "", now, now)
	require.NoError(t, err)
	return task
}

func TestDrainReplantTasksCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDrainReplantTasksCommand(commands.DefaultReplantBatchSize)
	require.NoError(t, err)

	ok := pendingTask(t, 1, "4.50", 0)
	flaky := pendingTask(t, 2, "6.00", 1)
	doomed := pendingTask(t, 3, "5.00", replant.MaxAttempts-1)
	unavailable := errors.New("plant service unavailable")

	supplier := new(MockPlantSupplier)
	supplier.On("PlantAndScale", ctx, ok.SourceStrength()).Return(int64(100), nil).Once()
	supplier.On("PlantAndScale", ctx, flaky.SourceStrength()).Return(int64(0), unavailable).Once()
	supplier.On("PlantAndScale", ctx, doomed.SourceStrength()).Return(int64(0), unavailable).Once()

	repo := new(MockReplantTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReplantTaskRepository").Return(repo).Once(),
		repo.On("ClaimPending", ctx, commands.DefaultReplantBatchSize).
			Return([]*replant.Task{ok, flaky, doomed}, nil).Once(),
		repo.On("Update", ctx, ok).Return(nil).Once(),
		repo.On("Update", ctx, flaky).Return(nil).Once(),
		repo.On("Update", ctx, doomed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDrainReplantTasksCommandHandler(replantFactory{newUoWFactory(uow)}, supplier, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.DrainResult{Done: 1, Retried: 1, Failed: 1}, result)

	assert.Equal(t, replant.Done, ok.Status())
	assert.Equal(t, replant.Pending, flaky.Status())
	assert.Equal(t, 2, flaky.Attempts())
	assert.Equal(t, "plant service unavailable", flaky.LastError())
	assert.Equal(t, replant.Failed, doomed.Status())
	assert.Equal(t, replant.MaxAttempts, doomed.Attempts())

	supplier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDrainReplantTasksCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDrainReplantTasksCommand(5)

	repo := new(MockReplantTaskRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ReplantTaskRepository").Return(repo)
	repo.On("ClaimPending", ctx, 5).Return([]*replant.Task{}, nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	supplier := new(MockPlantSupplier)
	h := commands.NewDrainReplantTasksCommandHandler(replantFactory{newUoWFactory(uow)}, supplier, discardLogger())

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, result)
	supplier.AssertNotCalled(t, "PlantAndScale", mock.Anything, mock.Anything)
}

func TestDrainReplantTasksCommandHandler_Handle_SaveFailureLeavesBatchPending(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDrainReplantTasksCommand(2)

	first := pendingTask(t, 1, "4.50", 0)
	second := pendingTask(t, 2, "4.80", 0)
	dbDown := errors.New("connection reset")

	supplier := new(MockPlantSupplier)
	supplier.On("PlantAndScale", ctx, first.SourceStrength()).Return(int64(100), nil).Once()
	supplier.On("PlantAndScale", ctx, second.SourceStrength()).Return(int64(101), nil).Once()

	repo := new(MockReplantTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReplantTaskRepository").Return(repo).Once(),
		repo.On("ClaimPending", ctx, 2).Return([]*replant.Task{first, second}, nil).Once(),
		repo.On("Update", ctx, first).Return(nil).Once(),
		repo.On("Update", ctx, second).Return(dbDown).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDrainReplantTasksCommandHandler(replantFactory{newUoWFactory(uow)}, supplier, discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, dbDown)
	assert.Zero(t, result)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	supplier.AssertExpectations(t)
}

func TestNewDrainReplantTasksCommand(t *testing.T) {
	_, err := commands.NewDrainReplantTasksCommand(0)
	require.ErrorIs(t, err, commands.ErrCountIsInvalid)
}
