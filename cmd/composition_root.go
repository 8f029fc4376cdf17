package cmd

import (
	"log/slog"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/notifier"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *notifier.LogNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier.NewLogNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSetAvailableCommandHandler() commands.SetAvailableCommandHandler {
	return commands.NewSetAvailableCommandHandler(c.driverUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGoOfflineCommandHandler() commands.GoOfflineCommandHandler {
	return commands.NewGoOfflineCommandHandler(c.driverUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePushTokenCommandHandler() commands.UpdatePushTokenCommandHandler {
	return commands.NewUpdatePushTokenCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSetVerificationCommandHandler() commands.SetVerificationCommandHandler {
	return commands.NewSetVerificationCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	return commands.NewSubmitRatingCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSoftDeleteDriverCommandHandler() commands.SoftDeleteDriverCommandHandler {
	return commands.NewSoftDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.driverUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateResetPeriodCountersCommandHandler() commands.ResetPeriodCountersCommandHandler {
	return commands.NewResetPeriodCountersCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindNearbyDriversQueryHandler() queries.FindNearbyDriversQueryHandler {
	return queries.NewFindNearbyDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFleetStatisticsQueryHandler() queries.GetFleetStatisticsQueryHandler {
	return queries.NewGetFleetStatisticsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateRegisterDriverCommandHandler(),
		c.CreateSetAvailableCommandHandler(),
		c.CreateGoOfflineCommandHandler(),
		c.CreateUpdateLocationCommandHandler(),
		c.CreateUpdatePushTokenCommandHandler(),
		c.CreateSetVerificationCommandHandler(),
		c.CreateSubmitRatingCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateSoftDeleteDriverCommandHandler(),
		c.CreateAssignDeliveryCommandHandler(),
		c.CreateGetDriverQueryHandler(),
		c.CreateFindNearbyDriversQueryHandler(),
		c.CreateGetFleetStatisticsQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateResetPeriodCountersCommandHandler(), c.logger)
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
