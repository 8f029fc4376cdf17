package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDriverQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDriverQueryHandler
}

func (suite *GetDriverQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&driverrepo.DriverDTO{}, &driverrepo.RatingDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDriverQueryHandler(db)
}

func (suite *GetDriverQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDriverQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE driver_ratings, drivers").Error
	suite.Require().NoError(err)
}

func (suite *GetDriverQueryHandlerTestSuite) TestHandle_ReturnsFullProfile() {
	d := suite.seedDriver("Alice")
	suite.Require().NoError(d.SetVerificationFlags(true, false, true))
	suite.Require().NoError(d.SetAvailable())

	location, err := kernel.NewLocation(25.2048, 55.2708)
	suite.Require().NoError(err)
	fix, err := driver.NewLocationFix(location, nil, nil, nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(d.UpdateLocation(fix))

	orderID := kernel.NewUUID()
	suite.Require().NoError(d.AssignDelivery(orderID))
	suite.Require().NoError(d.CompleteDelivery(&orderID, 20, 14.25, time.Now()))
	suite.Require().NoError(d.AddRating(orderID, 4, "on time", time.Now()))

	suite.save(d)

	query, err := queries.NewGetDriverQuery(d.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(d.ID()))
	suite.Equal("Alice", result.Name)
	suite.Equal("Alice@example.com", result.Email)
	suite.Equal("car", result.VehicleType)
	suite.Equal("available", result.Status)
	suite.Nil(result.ActiveDeliveryID)

	suite.Require().NotNil(result.Location)
	suite.InDelta(25.2048, result.Location.Latitude(), 1e-9)
	suite.NotNil(result.LocationUpdatedAt)

	suite.Equal(1, result.TotalDeliveries)
	suite.Equal(1, result.CompletedToday)
	suite.InDelta(14.25, result.TotalEarnings, 1e-9)
	suite.InDelta(20.0, result.AverageDeliveryTime, 1e-9)
	suite.InDelta(4.0, result.AverageRating, 1e-9)
	suite.Equal(1, result.TotalRatings)
	suite.NotNil(result.LastDeliveryAt)

	suite.True(result.EmailVerified)
	suite.False(result.PhoneVerified)
	suite.True(result.DocumentsVerified)
}

func (suite *GetDriverQueryHandlerTestSuite) TestHandle_DriverWithoutFix_HasNilLocation() {
	d := suite.seedDriver("Bob")
	suite.save(d)

	query, err := queries.NewGetDriverQuery(d.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("offline", result.Status)
	suite.Nil(result.Location)
	suite.Nil(result.LocationUpdatedAt)
	suite.Nil(result.LastDeliveryAt)
}

func (suite *GetDriverQueryHandlerTestSuite) TestHandle_OnDelivery_ExposesActiveOrder() {
	d := suite.seedDriver("Carol")
	suite.Require().NoError(d.SetVerificationFlags(true, true, true))
	suite.Require().NoError(d.SetAvailable())
	orderID := kernel.NewUUID()
	suite.Require().NoError(d.AssignDelivery(orderID))
	suite.save(d)

	query, err := queries.NewGetDriverQuery(d.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("on_delivery", result.Status)
	suite.Require().NotNil(result.ActiveDeliveryID)
	suite.True(result.ActiveDeliveryID.IsEqual(orderID))
}

func (suite *GetDriverQueryHandlerTestSuite) TestHandle_UnknownDriver_ReturnsNotFound() {
	query, err := queries.NewGetDriverQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetDriverQueryHandlerTestSuite) TestHandle_SoftDeletedDriver_ReturnsNotFound() {
	d := suite.seedDriver("Ghost")
	suite.Require().NoError(d.MarkDeleted(time.Now()))
	suite.save(d)

	query, err := queries.NewGetDriverQuery(d.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetDriverQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDriverQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetDriverQuery constructor")
}

func (suite *GetDriverQueryHandlerTestSuite) seedDriver(name string) *driver.Driver {
	vehicle, err := driver.NewVehicle(driver.VehicleTypeCar, "G-"+kernel.NewUUID().String()[:8], "Toyota", "white")
	suite.Require().NoError(err)

	d, err := driver.NewDriver(
		kernel.NewUUID(), "auth-"+kernel.NewUUID().String(), name, name+"@example.com", "+971500000000", vehicle)
	suite.Require().NoError(err)
	return d
}

func (suite *GetDriverQueryHandlerTestSuite) save(d *driver.Driver) {
	repo := driverrepo.NewGormDriverRepository(suite.db, &noopAggregateTracker{})
	err := repo.Add(context.Background(), d)
	suite.Require().NoError(err)
}

func TestGetDriverQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetDriverQueryHandlerTestSuite))
}
