package commands_test

import (
	"testing"
	"time"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/domain/model/plant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMarkPlantsUsedCommand(t *testing.T) {
	cmd, err := commands.NewMarkPlantsUsedCommand([]int64{3, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, cmd.IDs())

	cmd, err = commands.NewMarkPlantsUsedCommand([]int64{4, -2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, cmd.IDs())

	cmd, err = commands.NewMarkPlantsUsedCommand([]int64{0, -7})
	require.NoError(t, err)
	assert.Empty(t, cmd.IDs())
}

func TestMarkPlantsUsedCommandHandler_Handle_EmptyIsNoop(t *testing.T) {
	cmd, err := commands.NewMarkPlantsUsedCommand(nil)
	require.NoError(t, err)

	h := commands.NewMarkPlantsUsedCommandHandler(plantFactory{newUoWFactory()}, commands.ProductionJournal{})
	n, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMarkPlantsUsedCommandHandler_Handle_SkipsUnknownAndForcesProcessed(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkPlantsUsedCommand([]int64{1, 2, 404})

	harvested, err := plant.RestorePlant(2, "Rose", "Rosa", "FR", mustStrength(t, "3.00"), plant.Harvested, time.Now())
	require.NoError(t, err)
	plants := append(plantedRoses(t, 1), harvested)

	repo := new(MockPlantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlantRepository").Return(repo).Once(),
		repo.On("GetByIDs", ctx, []int64{1, 2, 404}).Return(plants, nil).Once(),
		repo.On("Update", ctx, plants[0]).Return(nil).Once(),
		repo.On("Update", ctx, plants[1]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkPlantsUsedCommandHandler(
		plantFactory{newUoWFactory(uow)},
		commands.NewProductionJournal(&memoryLog{}, nil, discardLogger()),
	)

	n, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, plant.Processed, plants[0].Status())
	assert.Equal(t, plant.Processed, plants[1].Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
