package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerDriverHandler   commands.RegisterDriverCommandHandler
	setAvailableHandler     commands.SetAvailableCommandHandler
	goOfflineHandler        commands.GoOfflineCommandHandler
	updateLocationHandler   commands.UpdateLocationCommandHandler
	updatePushTokenHandler  commands.UpdatePushTokenCommandHandler
	setVerificationHandler  commands.SetVerificationCommandHandler
	submitRatingHandler     commands.SubmitRatingCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	softDeleteDriverHandler commands.SoftDeleteDriverCommandHandler
	assignDeliveryHandler   commands.AssignDeliveryCommandHandler

	// Query handlers
	getDriverHandler          queries.GetDriverQueryHandler
	findNearbyDriversHandler  queries.FindNearbyDriversQueryHandler
	getFleetStatisticsHandler queries.GetFleetStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerDriverHandler commands.RegisterDriverCommandHandler,
	setAvailableHandler commands.SetAvailableCommandHandler,
	goOfflineHandler commands.GoOfflineCommandHandler,
	updateLocationHandler commands.UpdateLocationCommandHandler,
	updatePushTokenHandler commands.UpdatePushTokenCommandHandler,
	setVerificationHandler commands.SetVerificationCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	softDeleteDriverHandler commands.SoftDeleteDriverCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	getDriverHandler queries.GetDriverQueryHandler,
	findNearbyDriversHandler queries.FindNearbyDriversQueryHandler,
	getFleetStatisticsHandler queries.GetFleetStatisticsQueryHandler,
) *Server {
	return &Server{
		registerDriverHandler:     registerDriverHandler,
		setAvailableHandler:       setAvailableHandler,
		goOfflineHandler:          goOfflineHandler,
		updateLocationHandler:     updateLocationHandler,
		updatePushTokenHandler:    updatePushTokenHandler,
		setVerificationHandler:    setVerificationHandler,
		submitRatingHandler:       submitRatingHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		softDeleteDriverHandler:   softDeleteDriverHandler,
		assignDeliveryHandler:     assignDeliveryHandler,
		getDriverHandler:          getDriverHandler,
		findNearbyDriversHandler:  findNearbyDriversHandler,
		getFleetStatisticsHandler: getFleetStatisticsHandler,
	}
}

// RegisterDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var newDriver servers.NewDriver
	if err := ctx.Bind(&newDriver); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	vehicleType, err := driver.VehicleTypeFromString(string(newDriver.Vehicle.Type))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid vehicle type: "+err.Error())
	}

	vehicle, err := driver.NewVehicle(
		vehicleType,
		newDriver.Vehicle.PlateNumber,
		stringValue(newDriver.Vehicle.Make),
		stringValue(newDriver.Vehicle.Color),
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid vehicle data: "+err.Error())
	}

	cmd, err := commands.NewRegisterDriverCommand(
		newDriver.AuthId, newDriver.Name, newDriver.Email, newDriver.Phone, vehicle)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to register driver")
	}

	return ctx.JSON(http.StatusCreated, servers.DriverRegistered{
		Id: cmd.DriverID().Bytes(),
	})
}

// GetDriver handles GET /api/v1/drivers/{driverId} - retrieves a driver profile.
func (s *Server) GetDriver(ctx echo.Context, driverId servers.DriverId) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id: "+err.Error())
	}

	profile, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve driver")
	}

	response := servers.Driver{
		Id:                profile.ID.Bytes(),
		Name:              profile.Name,
		Email:             profile.Email,
		Phone:             profile.Phone,
		VehicleType:       profile.VehicleType,
		VehiclePlate:      profile.VehiclePlate,
		Status:            servers.DriverStatus(profile.Status),
		LocationUpdatedAt: profile.LocationUpdatedAt,
		Statistics: servers.DriverStatistics{
			TotalDeliveries:     profile.TotalDeliveries,
			CompletedToday:      profile.CompletedToday,
			CompletedThisWeek:   profile.CompletedThisWeek,
			CompletedThisMonth:  profile.CompletedThisMonth,
			TotalEarnings:       profile.TotalEarnings,
			EarningsToday:       profile.EarningsToday,
			AverageDeliveryTime: profile.AverageDeliveryTime,
			AverageRating:       profile.AverageRating,
			TotalRatings:        profile.TotalRatings,
			LastDeliveryAt:      profile.LastDeliveryAt,
		},
		EmailVerified:     profile.EmailVerified,
		PhoneVerified:     profile.PhoneVerified,
		DocumentsVerified: profile.DocumentsVerified,
	}

	if profile.ActiveDeliveryID != nil {
		orderID := profile.ActiveDeliveryID.Bytes()
		response.ActiveDeliveryId = &orderID
	}
	if profile.Location != nil {
		response.Location = &servers.Location{
			Latitude:  profile.Location.Latitude(),
			Longitude: profile.Location.Longitude(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteDriver handles DELETE /api/v1/drivers/{driverId} - soft deletes a driver.
func (s *Server) DeleteDriver(ctx echo.Context, driverId servers.DriverId) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewSoftDeleteDriverCommand(driverID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id: "+err.Error())
	}

	if handleErr := s.softDeleteDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to delete driver")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDriverAvailable handles POST /api/v1/drivers/{driverId}/available.
func (s *Server) SetDriverAvailable(ctx echo.Context, driverId servers.DriverId) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewSetAvailableCommand(driverID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id: "+err.Error())
	}

	if handleErr := s.setAvailableHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to set driver available")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDriverOffline handles POST /api/v1/drivers/{driverId}/offline.
func (s *Server) SetDriverOffline(ctx echo.Context, driverId servers.DriverId) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewGoOfflineCommand(driverID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id: "+err.Error())
	}

	if handleErr := s.goOfflineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to take driver offline")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDriverLocation handles POST /api/v1/drivers/{driverId}/location.
func (s *Server) UpdateDriverLocation(ctx echo.Context, driverId servers.DriverId) error {
	var update servers.LocationUpdate
	if err := ctx.Bind(&update); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	location, err := kernel.NewLocation(update.Latitude, update.Longitude)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid coordinates: "+err.Error())
	}

	cmd, err := commands.NewUpdateLocationCommand(driverID, location, update.Accuracy, update.Heading, update.Speed)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid location fix: "+err.Error())
	}

	if handleErr := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to record location")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDriverPushToken handles POST /api/v1/drivers/{driverId}/push-token.
func (s *Server) UpdateDriverPushToken(ctx echo.Context, driverId servers.DriverId) error {
	var update servers.PushTokenUpdate
	if err := ctx.Bind(&update); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewUpdatePushTokenCommand(driverID, update.Token)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid push token: "+err.Error())
	}

	if handleErr := s.updatePushTokenHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update push token")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDriverVerification handles POST /api/v1/drivers/{driverId}/verification.
func (s *Server) SetDriverVerification(ctx echo.Context, driverId servers.DriverId) error {
	var update servers.VerificationUpdate
	if err := ctx.Bind(&update); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewSetVerificationCommand(
		driverID, update.EmailVerified, update.PhoneVerified, update.DocumentsVerified)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid verification data: "+err.Error())
	}

	if handleErr := s.setVerificationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update verification flags")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitDriverRating handles POST /api/v1/drivers/{driverId}/ratings.
func (s *Server) SubmitDriverRating(ctx echo.Context, driverId servers.DriverId) error {
	var submission servers.RatingSubmission
	if err := ctx.Bind(&submission); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	orderID, err := kernel.UUIDFromBytes(submission.OrderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewSubmitRatingCommand(driverID, orderID, submission.Value, stringValue(submission.Comment))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid rating: "+err.Error())
	}

	if handleErr := s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to submit rating")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/drivers/{driverId}/deliveries/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, driverId servers.DriverId) error {
	var completion servers.DeliveryCompletion
	if err := ctx.Bind(&completion); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	var orderID *kernel.UUID
	if completion.OrderId != nil {
		id, idErr := kernel.UUIDFromBytes(completion.OrderId[:])
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
		}
		orderID = &id
	}

	cmd, err := commands.NewCompleteDeliveryCommand(
		driverID, orderID, completion.DeliveryTimeMinutes, completion.Earnings)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to complete delivery")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/dispatch - assigns an order to a driver.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	var request servers.DispatchRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(request.OrderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var pickup *kernel.Location
	if request.Pickup != nil {
		location, locErr := kernel.NewLocation(request.Pickup.Latitude, request.Pickup.Longitude)
		if locErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid pickup location: "+locErr.Error())
		}
		pickup = &location
	}

	radiusKm := 0.0
	if request.RadiusKm != nil {
		radiusKm = *request.RadiusKm
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, pickup, radiusKm)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid dispatch request: "+err.Error())
	}

	claimedID, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, services.ErrNoDriverAvailable) {
			return errorResponse(ctx, http.StatusConflict, "No driver available")
		}
		return domainError(ctx, err, "Failed to dispatch order")
	}

	return ctx.JSON(http.StatusOK, servers.DispatchResult{
		DriverId: claimedID.Bytes(),
	})
}

// FindNearbyDrivers handles GET /api/v1/drivers/nearby.
func (s *Server) FindNearbyDrivers(ctx echo.Context, params servers.FindNearbyDriversParams) error {
	center, err := kernel.NewLocation(params.Latitude, params.Longitude)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid coordinates: "+err.Error())
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewFindNearbyDriversQuery(center, params.RadiusKm, limit)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid search parameters: "+err.Error())
	}

	drivers, err := s.findNearbyDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to search for drivers")
	}

	response := make([]servers.NearbyDriver, len(drivers))
	for i, d := range drivers {
		response[i] = servers.NearbyDriver{
			Id:          d.ID.Bytes(),
			Name:        d.Name,
			VehicleType: d.VehicleType,
			Location: servers.Location{
				Latitude:  d.Location.Latitude(),
				Longitude: d.Location.Longitude(),
			},
			AverageRating: d.AverageRating,
			TotalRatings:  d.TotalRatings,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFleetStatistics handles GET /api/v1/fleet/statistics.
func (s *Server) GetFleetStatistics(ctx echo.Context) error {
	query := queries.NewGetFleetStatisticsQuery()

	stats, err := s.getFleetStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve fleet statistics")
	}

	return ctx.JSON(http.StatusOK, servers.FleetStatistics{
		TotalDrivers:         stats.TotalDrivers,
		OfflineDrivers:       stats.OfflineDrivers,
		AvailableDrivers:     stats.AvailableDrivers,
		OnDeliveryDrivers:    stats.OnDeliveryDrivers,
		TotalDeliveries:      stats.TotalDeliveries,
		DeliveriesToday:      stats.DeliveriesToday,
		TotalEarnings:        stats.TotalEarnings,
		EarningsToday:        stats.EarningsToday,
		AverageRating:        stats.AverageRating,
		DocumentsVerified:    stats.DocumentsVerified,
		WithFreshLocationFix: stats.WithFreshLocationFix,
	})
}

// domainError translates application errors into HTTP error responses.
func domainError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, message+": "+err.Error())
	case errors.Is(err, errs.ErrConflict):
		return errorResponse(ctx, http.StatusConflict, message+": "+err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, message+": "+err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, message)
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
