package commands_test

import (
	"errors"
	"testing"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/plant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPlantNewCommand(t *testing.T) {
	t.Run("defaults without strength", func(t *testing.T) {
		cmd, err := commands.NewPlantNewCommand("", "", "", nil)
		require.NoError(t, err)
		assert.Nil(t, cmd.Seed().Strength)
	})

	t.Run("strength must be positive", func(t *testing.T) {
		zero := decimal.Zero
		_, err := commands.NewPlantNewCommand("Rose", "", "", &zero)
		require.ErrorIs(t, err, commands.ErrStrengthIsInvalid)
	})

	t.Run("explicit strength is rounded", func(t *testing.T) {
		v := decimal.RequireFromString("3.456")
		cmd, err := commands.NewPlantNewCommand("Rose", "Rosa", "FR", &v)
		require.NoError(t, err)
		require.NotNil(t, cmd.Seed().Strength)
		assert.Equal(t, "3.46", cmd.Seed().Strength.String())
	})
}

func TestPlantNewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	v := decimal.RequireFromString("2.50")
	cmd, err := commands.NewPlantNewCommand("Rose", "", "", &v)
	require.NoError(t, err)

	repo := new(MockPlantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlantRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*plant.Plant")).Run(func(args mock.Arguments) {
			_ = args.Get(1).(*plant.Plant).AssignID(7)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	log := &memoryLog{}
	audit := &memoryAudit{}
	h := commands.NewPlantNewCommandHandler(
		plantFactory{newUoWFactory(uow)},
		commands.NewProductionJournal(log, audit, discardLogger()),
	)

	specimen, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(7), specimen.ID())
	assert.Equal(t, "Rose", specimen.CommonName())
	assert.Equal(t, plant.DefaultLatinName, specimen.LatinName())
	assert.Equal(t, plant.Planted, specimen.Status())
	assert.Equal(t, []string{"INFO Planted Rose with strength 2.50"}, log.messages())
	require.Len(t, audit.events, 1)
	assert.Equal(t, "production", audit.events[0].Source)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlantNewCommandHandler_Handle_RandomStrengthInNominalRange(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlantNewCommand("", "", "", nil)
	require.NoError(t, err)

	repo := new(MockPlantRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("PlantRepository").Return(repo)
	repo.On("Add", ctx, mock.Anything).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	h := commands.NewPlantNewCommandHandler(
		plantFactory{newUoWFactory(uow)},
		commands.NewProductionJournal(&memoryLog{}, nil, discardLogger()),
	)

	specimen, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	s := specimen.Strength().Decimal()
	assert.True(t, s.GreaterThanOrEqual(kernel.MinNominalStrength))
	assert.True(t, s.LessThanOrEqual(kernel.MaxNominalStrength))
	assert.Equal(t, plant.DefaultCommonName, specimen.CommonName())
}

func TestPlantNewCommandHandler_Handle_AddError_NothingJournalled(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlantNewCommand("Rose", "", "", nil)

	repo := new(MockPlantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlantRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	log := &memoryLog{}
	h := commands.NewPlantNewCommandHandler(
		plantFactory{newUoWFactory(uow)},
		commands.NewProductionJournal(log, nil, discardLogger()),
	)

	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "insert failed")
	assert.Empty(t, log.entries)
	uow.AssertExpectations(t)
}

func TestPlantNewCommandHandler_Handle_JournalFailureIsIgnored(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlantNewCommand("Rose", "", "", nil)

	repo := new(MockPlantRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("PlantRepository").Return(repo)
	repo.On("Add", ctx, mock.Anything).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	plog := new(MockProductionLog)
	plog.On("Append", ctx, mock.Anything).Return(errors.New("log down")).Once()

	h := commands.NewPlantNewCommandHandler(
		plantFactory{newUoWFactory(uow)},
		commands.NewProductionJournal(plog, nil, discardLogger()),
	)

	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	plog.AssertExpectations(t)
}

func TestPlantNewCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewPlantNewCommandHandler(plantFactory{newUoWFactory()}, commands.ProductionJournal{})
	_, err := h.Handle(t.Context(), commands.PlantNewCommand{})
	require.ErrorIs(t, err, commands.ErrPlantNewCommandIsNotConstructed)
}
