package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type FindNearbyDriversQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.FindNearbyDriversQueryHandler
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewFindNearbyDriversQueryHandler(db)
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE driver_ratings, drivers").Error
	suite.Require().NoError(err)
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := suite.newQuery(25.2048, 55.2708, 5, 0)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) TestHandle_RanksNearbyDriversByRating() {
	steady := suite.newAvailableDriver("Steady", 25.20, 55.27, time.Now())
	suite.rate(steady, 3)
	star := suite.newAvailableDriver("Star", 25.21, 55.28, time.Now())
	suite.rate(star, 5)
	suite.saveDrivers(steady, star)

	query := suite.newQuery(25.2048, 55.2708, 10, 0)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Star", result[0].Name)
	suite.True(result[0].ID.IsEqual(star.ID()))
	suite.InDelta(5.0, result[0].AverageRating, 1e-9)
	suite.Equal(1, result[0].TotalRatings)
	suite.Equal("bike", result[0].VehicleType)
	suite.InDelta(25.21, result[0].Location.Latitude(), 1e-9)
	suite.InDelta(55.28, result[0].Location.Longitude(), 1e-9)

	suite.Equal("Steady", result[1].Name)
	suite.True(result[1].ID.IsEqual(steady.ID()))
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) TestHandle_ExcludesIneligibleDrivers() {
	eligible := suite.newAvailableDriver("Eligible", 25.20, 55.27, time.Now())

	outside := suite.newAvailableDriver("Outside", 26.50, 56.50, time.Now())

	stale := suite.newAvailableDriver("Stale", 25.20, 55.27,
		time.Now().Add(-driver.FreshnessWindow-time.Minute))

	busy := suite.newAvailableDriver("Busy", 25.20, 55.27, time.Now())
	suite.Require().NoError(busy.AssignDelivery(kernel.NewUUID()))

	deleted := suite.newAvailableDriver("Deleted", 25.20, 55.27, time.Now())
	suite.Require().NoError(deleted.MarkDeleted(time.Now()))

	suite.saveDrivers(eligible, outside, stale, busy, deleted)

	query := suite.newQuery(25.2048, 55.2708, 10, 0)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Eligible", result[0].Name)
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) TestHandle_RespectsLimit() {
	for i := range 5 {
		d := suite.newAvailableDriver("Driver", 25.20+float64(i)*0.001, 55.27, time.Now())
		suite.saveDrivers(d)
	}

	query := suite.newQuery(25.2048, 55.2708, 10, 3)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.FindNearbyDriversQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewFindNearbyDriversQuery constructor")
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) newQuery(
	lat, lon, radiusKm float64, limit int,
) queries.FindNearbyDriversQuery {
	center, err := kernel.NewLocation(lat, lon)
	suite.Require().NoError(err)

	query, err := queries.NewFindNearbyDriversQuery(center, radiusKm, limit)
	suite.Require().NoError(err)
	return query
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) newAvailableDriver(
	name string, lat, lon float64, fixedAt time.Time,
) *driver.Driver {
	vehicle, err := driver.NewVehicle(driver.VehicleTypeBike, "N-"+kernel.NewUUID().String()[:8], "Honda", "red")
	suite.Require().NoError(err)

	d, err := driver.NewDriver(
		kernel.NewUUID(), "auth-"+kernel.NewUUID().String(), name, name+"@example.com", "+971500000000", vehicle)
	suite.Require().NoError(err)

	suite.Require().NoError(d.SetVerificationFlags(true, true, true))
	suite.Require().NoError(d.SetAvailable())

	location, err := kernel.NewLocation(lat, lon)
	suite.Require().NoError(err)
	fix, err := driver.NewLocationFix(location, nil, nil, nil, fixedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(d.UpdateLocation(fix))

	return d
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) rate(d *driver.Driver, value int) {
	suite.Require().NoError(d.AddRating(kernel.NewUUID(), value, "", time.Now()))
}

func (suite *FindNearbyDriversQueryHandlerTestSuite) saveDrivers(drivers ...*driver.Driver) {
	repo := driverrepo.NewGormDriverRepository(suite.db, &noopAggregateTracker{})
	for _, d := range drivers {
		err := repo.Add(context.Background(), d)
		suite.Require().NoError(err)
	}
}

func TestFindNearbyDriversQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(FindNearbyDriversQueryHandlerTestSuite))
}

// noopAggregateTracker satisfies the repository's tracker dependency.
// Query tests persist seed data directly and never inspect tracking.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
