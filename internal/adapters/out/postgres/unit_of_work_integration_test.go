package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&driverrepo.DriverDTO{}, &driverrepo.RatingDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE driver_ratings, drivers").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DriverRepository(), "First instance should provide driver repository")
	suite.NotNil(uow2.DriverRepository(), "Second instance should provide driver repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleDriverTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleDriverTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver("Alice")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrieved, err := uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testDriver))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testDriver))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver("Bob")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	_, err = uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Nothing persisted after rollback
	newUow := suite.factory.Create()
	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	driver1 := createTestDriver("First")
	driver2 := createTestDriver("Second")

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.DriverRepository().Add(ctx, driver1)
	suite.Require().NoError(err)

	err = uow2.DriverRepository().Add(ctx, driver2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().NoError(err, "UOW1 should see driver1")

	_, err = uow1.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().Error(err, "UOW1 should not see driver2")

	_, err = uow2.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().NoError(err, "UOW2 should see driver2")

	_, err = uow2.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().Error(err, "UOW2 should not see driver1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Only driver1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().NoError(err, "Driver1 should persist after commit")

	_, err = newUow.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().Error(err, "Driver2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver("Carol")

	// Add without beginning transaction (auto-commit)
	err := uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	retrieved, err := uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testDriver))

	newUow := suite.factory.Create()
	retrieved, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testDriver))
}

// TestUnitOfWork_DeliveryWorkflow tests the full claim-and-complete workflow
// against a locked driver row within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryWorkflow() {
	ctx := context.Background()

	// Seed a dispatchable driver outside the transaction
	testDriver := createTestDriver("Dave")
	suite.Require().NoError(testDriver.SetVerificationFlags(true, true, true))
	suite.Require().NoError(testDriver.SetAvailable())

	initialUow := suite.factory.Create()
	suite.Require().NoError(initialUow.DriverRepository().Add(ctx, testDriver))

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Claim the driver under a row lock
	locked, err := uow.DriverRepository().GetForUpdate(ctx, testDriver.ID())
	suite.Require().NoError(err)

	orderID := kernel.NewUUID()
	err = locked.AssignDelivery(orderID)
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Complete the delivery in a second transaction
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err = uow.DriverRepository().GetForUpdate(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.StatusOnDelivery, locked.Status())

	err = locked.CompleteDelivery(&orderID, 25, 18.75, time.Now())
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()
	final, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.StatusAvailable, final.Status())
	suite.Nil(final.ActiveDeliveryID())
	suite.Equal(1, final.Stats().TotalDeliveries())
	suite.InDelta(18.75, final.Stats().TotalEarnings(), 1e-9)
}

// TestUnitOfWork_WorkflowRollback tests rollback behavior during a claim workflow.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()

	testDriver := createTestDriver("Eve")
	suite.Require().NoError(testDriver.SetVerificationFlags(true, true, true))
	suite.Require().NoError(testDriver.SetAvailable())

	initialUow := suite.factory.Create()
	suite.Require().NoError(initialUow.DriverRepository().Add(ctx, testDriver))

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err := uow.DriverRepository().GetForUpdate(ctx, testDriver.ID())
	suite.Require().NoError(err)

	err = locked.AssignDelivery(kernel.NewUUID())
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// The claim was discarded and the driver is still available
	newUow := suite.factory.Create()
	restored, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.StatusAvailable, restored.Status())
	suite.Nil(restored.ActiveDeliveryID())
}

// createTestDriver creates a valid driver for testing purposes.
func createTestDriver(name string) *driver.Driver {
	vehicle, _ := driver.NewVehicle(driver.VehicleTypeCar, "P-"+name, "Toyota", "white")
	testDriver, _ := driver.NewDriver(
		kernel.NewUUID(), "auth-"+name, name, name+"@example.com", "+971500000000", vehicle)
	return testDriver
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
