package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDriverOnDelivery(t *testing.T, orderID kernel.UUID) *driver.Driver {
	t.Helper()

	d := newOfflineDriver(t)
	require.NoError(t, d.SetVerificationFlags(true, true, true))
	require.NoError(t, d.SetAvailable())
	require.NoError(t, d.AssignDelivery(orderID))
	return d
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverEntity := newDriverOnDelivery(t, orderID)

	cmd, err := commands.NewCompleteDeliveryCommand(driverEntity.ID(), &orderID, 18, 12.50)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("GetForUpdate", ctx, driverEntity.ID()).Return(driverEntity, nil).Once(),
		mockRepo.On("Update", ctx, driverEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, driver.StatusAvailable, driverEntity.Status())
	assert.Nil(t, driverEntity.ActiveDeliveryID())

	stats := driverEntity.Stats()
	assert.Equal(t, 1, stats.TotalDeliveries())
	assert.Equal(t, 1, stats.CompletedToday())
	assert.InDelta(t, 12.50, stats.TotalEarnings(), 1e-9)
	assert.InDelta(t, 18.0, stats.AverageDeliveryTime(), 1e-9)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_OrderMismatch(t *testing.T) {
	// Arrange
	ctx := t.Context()
	activeOrderID := kernel.NewUUID()
	staleOrderID := kernel.NewUUID()
	driverEntity := newDriverOnDelivery(t, activeOrderID)

	cmd, err := commands.NewCompleteDeliveryCommand(driverEntity.ID(), &staleOrderID, 18, 12.50)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("GetForUpdate", ctx, driverEntity.ID()).Return(driverEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)

	// Rejected completion leaves status and stats untouched
	assert.Equal(t, driver.StatusOnDelivery, driverEntity.Status())
	require.NotNil(t, driverEntity.ActiveDeliveryID())
	assert.True(t, driverEntity.ActiveDeliveryID().IsEqual(activeOrderID))
	assert.Zero(t, driverEntity.Stats().TotalDeliveries())

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_NotOnDelivery(t *testing.T) {
	// Arrange
	ctx := t.Context()
	driverEntity := newOfflineDriver(t)

	cmd, err := commands.NewCompleteDeliveryCommand(driverEntity.ID(), nil, 18, 12.50)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("GetForUpdate", ctx, driverEntity.ID()).Return(driverEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Zero(t, driverEntity.Stats().TotalDeliveries())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestNewCompleteDeliveryCommand_InvalidInput(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("zero delivery time", func(t *testing.T) {
		cmd, err := commands.NewCompleteDeliveryCommand(driverID, nil, 0, 10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, cmd)
	})

	t.Run("negative delivery time", func(t *testing.T) {
		cmd, err := commands.NewCompleteDeliveryCommand(driverID, nil, -5, 10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, cmd)
	})

	t.Run("negative earnings", func(t *testing.T) {
		cmd, err := commands.NewCompleteDeliveryCommand(driverID, nil, 18, -0.01)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, cmd)
	})

	t.Run("zero earnings is allowed", func(t *testing.T) {
		cmd, err := commands.NewCompleteDeliveryCommand(driverID, nil, 18, 0)

		require.NoError(t, err)
		assert.NotZero(t, cmd)
	})
}
