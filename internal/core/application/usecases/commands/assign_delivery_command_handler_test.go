package commands_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDispatchableDriver(t *testing.T, name string) *driver.Driver {
	t.Helper()

	vehicle, err := driver.NewVehicle(driver.VehicleTypeBike, "B-"+name, "Honda", "red")
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), "auth-"+name, name, name+"@example.com", "+971500000000", vehicle)
	require.NoError(t, err)
	require.NoError(t, d.SetVerificationFlags(true, true, true))
	require.NoError(t, d.SetAvailable())

	return d
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(orderID, nil, 0)
	require.NoError(t, err)

	candidate := newDispatchableDriver(t, "Alice")
	require.NoError(t, candidate.SetPushToken("token-alice"))

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)
	mockNotifier := new(MockNotifier)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("GetAvailableForDispatch", ctx, (*kernel.Location)(nil), 0.0).
			Return([]*driver.Driver{candidate}, nil).Once(),
		mockRepo.On("Update", ctx, candidate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockNotifier.On("NotifyAssignment", ctx, "token-alice", candidate.ID(), orderID).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignDeliveryCommandHandler(mockFactory, mockNotifier, discardLogger())

	// Act
	driverID, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, driverID.IsEqual(candidate.ID()))
	assert.Equal(t, driver.StatusOnDelivery, candidate.Status())
	require.NotNil(t, candidate.ActiveDeliveryID())
	assert.True(t, candidate.ActiveDeliveryID().IsEqual(orderID))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_NoDriverAvailable(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAssignDeliveryCommand(kernel.NewUUID(), nil, 0)
	require.NoError(t, err)

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)
	mockNotifier := new(MockNotifier)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("GetAvailableForDispatch", ctx, (*kernel.Location)(nil), 0.0).
			Return([]*driver.Driver{}, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignDeliveryCommandHandler(mockFactory, mockNotifier, discardLogger())

	// Act
	driverID, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrNoDriverAvailable)
	assert.Zero(t, driverID)

	mockNotifier.AssertNotCalled(t, "NotifyAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_NotificationFailureIsSwallowed(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(orderID, nil, 0)
	require.NoError(t, err)

	candidate := newDispatchableDriver(t, "Bob")

	mockRepo := new(MockDriverRepository)
	mockUoW := new(MockDriverUoW)
	mockFactory := new(MockDriverUoWFactory)
	mockNotifier := new(MockNotifier)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DriverRepository").Return(mockRepo).Once(),
		mockRepo.On("GetAvailableForDispatch", ctx, (*kernel.Location)(nil), 0.0).
			Return([]*driver.Driver{candidate}, nil).Once(),
		mockRepo.On("Update", ctx, candidate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockNotifier.On("NotifyAssignment", ctx, "", candidate.ID(), orderID).
			Return(errors.New("push gateway unreachable")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAssignDeliveryCommandHandler(mockFactory, mockNotifier, discardLogger())

	// Act
	driverID, err := handler.Handle(ctx, cmd)

	// Assert
	// The assignment is committed; a push failure must not surface as an error
	require.NoError(t, err)
	assert.True(t, driverID.IsEqual(candidate.ID()))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.AssignDeliveryCommand

	mockFactory := new(MockDriverUoWFactory)
	mockNotifier := new(MockNotifier)
	handler := commands.NewAssignDeliveryCommandHandler(mockFactory, mockNotifier, discardLogger())

	// Act
	driverID, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDeliveryCommandIsNotConstructed)
	assert.Zero(t, driverID)
	mockFactory.AssertExpectations(t)
}

// fakeDispatchUoW is an in-memory unit of work that mimics the row-lock
// semantics of the real one: candidates are claimed under a shared mutex,
// so two concurrent dispatches never see the same driver as claimable.
type fakeDispatchUoW struct {
	store    *fakeDriverStore
	finished bool
}

type fakeDriverStore struct {
	mu      sync.Mutex
	drivers []*driver.Driver
}

func (u *fakeDispatchUoW) Begin(context.Context) error {
	u.store.mu.Lock()
	return nil
}

func (u *fakeDispatchUoW) Commit(context.Context) error {
	u.finished = true
	u.store.mu.Unlock()
	return nil
}

func (u *fakeDispatchUoW) Rollback(context.Context) error {
	if !u.finished {
		u.finished = true
		u.store.mu.Unlock()
	}
	return nil
}

func (u *fakeDispatchUoW) DriverRepository() ports.DriverRepository {
	return &fakeDriverRepo{store: u.store}
}

type fakeDriverRepo struct {
	store *fakeDriverStore
}

func (r *fakeDriverRepo) Add(_ context.Context, d *driver.Driver) error {
	r.store.drivers = append(r.store.drivers, d)
	return nil
}

func (r *fakeDriverRepo) Update(context.Context, *driver.Driver) error { return nil }

func (r *fakeDriverRepo) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.GetForUpdate(context.Background(), id)
}

func (r *fakeDriverRepo) GetForUpdate(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	for _, d := range r.store.drivers {
		if d.ID().IsEqual(id) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("driver %s not found", id)
}

func (r *fakeDriverRepo) GetAvailableForDispatch(context.Context, *kernel.Location, float64) ([]*driver.Driver, error) {
	var candidates []*driver.Driver
	for _, d := range r.store.drivers {
		if d.Status() == driver.StatusAvailable && !d.IsDeleted() && d.DocumentsVerified() {
			candidates = append(candidates, d)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Stats().TotalDeliveries() < candidates[j].Stats().TotalDeliveries()
	})
	return candidates, nil
}

func (r *fakeDriverRepo) ResetPeriodCounters(context.Context, driver.PeriodKind) error { return nil }

type fakeDispatchUoWFactory struct {
	store *fakeDriverStore
}

func (f *fakeDispatchUoWFactory) Create() commands.DriverUoW {
	return &fakeDispatchUoW{store: f.store}
}

func TestAssignDeliveryCommandHandler_ConcurrentDispatches_NoDoubleBooking(t *testing.T) {
	// Arrange: fewer drivers than orders, all dispatched at once
	const driverCount = 8
	const orderCount = 20

	store := &fakeDriverStore{}
	for i := range driverCount {
		store.drivers = append(store.drivers, newDispatchableDriver(t, fmt.Sprintf("drv%d", i)))
	}

	factory := &fakeDispatchUoWFactory{store: store}
	mockNotifier := new(MockNotifier)
	mockNotifier.On("NotifyAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Maybe()

	handler := commands.NewAssignDeliveryCommandHandler(factory, mockNotifier, discardLogger())

	var wg sync.WaitGroup
	results := make([]kernel.UUID, orderCount)
	errs := make([]error, orderCount)

	// Act
	for i := range orderCount {
		wg.Add(1)
		go func() {
			defer wg.Done()

			cmd, cmdErr := commands.NewAssignDeliveryCommand(kernel.NewUUID(), nil, 0)
			if cmdErr != nil {
				errs[i] = cmdErr
				return
			}
			results[i], errs[i] = handler.Handle(context.Background(), cmd)
		}()
	}
	wg.Wait()

	// Assert: exactly driverCount assignments succeed, each winning a distinct driver
	winners := make(map[string]int)
	var succeeded, exhausted int
	for i := range orderCount {
		switch {
		case errs[i] == nil:
			succeeded++
			winners[results[i].String()]++
		case errors.Is(errs[i], services.ErrNoDriverAvailable):
			exhausted++
		default:
			t.Fatalf("unexpected dispatch error: %v", errs[i])
		}
	}

	assert.Equal(t, driverCount, succeeded)
	assert.Equal(t, orderCount-driverCount, exhausted)
	assert.Len(t, winners, driverCount, "every successful dispatch must claim a distinct driver")
	for id, n := range winners {
		assert.Equal(t, 1, n, "driver %s was double booked", id)
	}

	// Every driver ends on a delivery with the invariant intact
	for _, d := range store.drivers {
		assert.Equal(t, driver.StatusOnDelivery, d.Status())
		assert.NotNil(t, d.ActiveDeliveryID())
	}
}
