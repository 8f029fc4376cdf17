// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Statistics live in the same row as the driver: they change together with the
// status on every completion and splitting them would force a join on every
// dispatch query. Ratings are a child table keyed by driver.
type DriverDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Email  string    `gorm:"type:varchar(255);not null"`
	Phone  string    `gorm:"type:varchar(64);not null"`

	VehicleType  string `gorm:"type:varchar(32);not null"`
	VehiclePlate string `gorm:"type:varchar(32);not null"`
	VehicleMake  string `gorm:"type:varchar(64)"`
	VehicleColor string `gorm:"type:varchar(32)"`

	Status           string     `gorm:"type:varchar(32);not null;index"`
	ActiveDeliveryID *uuid.UUID `gorm:"type:uuid"`

	Latitude          *float64   `gorm:"type:double precision;index"`
	Longitude         *float64   `gorm:"type:double precision;index"`
	Accuracy          *float64   `gorm:"type:double precision"`
	Heading           *float64   `gorm:"type:double precision"`
	Speed             *float64   `gorm:"type:double precision"`
	LocationUpdatedAt *time.Time `gorm:"type:timestamptz"`

	Stats StatsDTO `gorm:"embedded"`

	EmailVerified     bool `gorm:"not null;default:false"`
	PhoneVerified     bool `gorm:"not null;default:false"`
	DocumentsVerified bool `gorm:"not null;default:false;index"`

	PushToken string `gorm:"type:varchar(512)"`

	IsDeleted bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:"type:timestamptz"`

	Ratings []RatingDTO `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers" instead of "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// StatsDTO represents the embedded statistics columns within the driver table.
type StatsDTO struct {
	TotalDeliveries    int `gorm:"type:int;not null;default:0;index"`
	CompletedToday     int `gorm:"type:int;not null;default:0"`
	CompletedThisWeek  int `gorm:"type:int;not null;default:0"`
	CompletedThisMonth int `gorm:"type:int;not null;default:0"`

	TotalEarnings     float64 `gorm:"type:double precision;not null;default:0"`
	EarningsToday     float64 `gorm:"type:double precision;not null;default:0"`
	EarningsThisWeek  float64 `gorm:"type:double precision;not null;default:0"`
	EarningsThisMonth float64 `gorm:"type:double precision;not null;default:0"`

	AverageDeliveryTime float64 `gorm:"type:double precision;not null;default:0"`
	AverageRating       float64 `gorm:"type:double precision;not null;default:0;index"`
	TotalRatings        int     `gorm:"type:int;not null;default:0"`

	LastDeliveryAt *time.Time `gorm:"type:timestamptz"`
}

// RatingDTO represents the database structure for persisting delivery ratings.
// Links to the driver via foreign key; the order reference is kept for
// traceability but not enforced here, orders live in another service.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null"`
	Value     int       `gorm:"type:int;not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "driver_ratings"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	driverID := aggregate.ID().Bytes()

	var activeDeliveryID *uuid.UUID
	if aggregate.ActiveDeliveryID() != nil {
		raw := aggregate.ActiveDeliveryID().Bytes()
		activeDeliveryID = &raw
	}

	dto := DriverDTO{
		ID:     driverID,
		AuthID: aggregate.AuthID(),
		Name:   aggregate.Name(),
		Email:  aggregate.Email(),
		Phone:  aggregate.Phone(),

		VehicleType:  aggregate.Vehicle().Type().String(),
		VehiclePlate: aggregate.Vehicle().PlateNumber(),
		VehicleMake:  aggregate.Vehicle().Make(),
		VehicleColor: aggregate.Vehicle().Color(),

		Status:           aggregate.Status().String(),
		ActiveDeliveryID: activeDeliveryID,

		Stats: statsFromDomain(aggregate.Stats()),

		EmailVerified:     aggregate.EmailVerified(),
		PhoneVerified:     aggregate.PhoneVerified(),
		DocumentsVerified: aggregate.DocumentsVerified(),

		PushToken: aggregate.PushToken(),

		IsDeleted: aggregate.IsDeleted(),
		DeletedAt: aggregate.DeletedAt(),
	}

	if fix := aggregate.LocationFix(); fix != nil {
		latitude := fix.Location().Latitude()
		longitude := fix.Location().Longitude()
		updatedAt := fix.UpdatedAt()

		dto.Latitude = &latitude
		dto.Longitude = &longitude
		dto.Accuracy = fix.Accuracy()
		dto.Heading = fix.Heading()
		dto.Speed = fix.Speed()
		dto.LocationUpdatedAt = &updatedAt
	}

	ratings := aggregate.Ratings()
	dto.Ratings = make([]RatingDTO, 0, len(ratings))
	for _, r := range ratings {
		// deterministic per (driver, order) so re-saving the aggregate
		// upserts instead of duplicating rating rows
		orderID := r.OrderID().Bytes()
		dto.Ratings = append(dto.Ratings, RatingDTO{
			ID:        uuid.NewSHA1(driverID, orderID[:]),
			DriverID:  driverID,
			OrderID:   r.OrderID().Bytes(),
			Value:     r.Value(),
			Comment:   r.Comment(),
			CreatedAt: r.CreatedAt(),
		})
	}

	return dto
}

func statsFromDomain(stats driver.Stats) StatsDTO {
	return StatsDTO{
		TotalDeliveries:    stats.TotalDeliveries(),
		CompletedToday:     stats.CompletedToday(),
		CompletedThisWeek:  stats.CompletedThisWeek(),
		CompletedThisMonth: stats.CompletedThisMonth(),

		TotalEarnings:     stats.TotalEarnings(),
		EarningsToday:     stats.EarningsToday(),
		EarningsThisWeek:  stats.EarningsThisWeek(),
		EarningsThisMonth: stats.EarningsThisMonth(),

		AverageDeliveryTime: stats.AverageDeliveryTime(),
		AverageRating:       stats.AverageRating(),
		TotalRatings:        stats.TotalRatings(),

		LastDeliveryAt: stats.LastDeliveryAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
// Reconstructs the complete aggregate including ratings using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := driver.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}
	vehicle, err := driver.NewVehicle(vehicleType, dto.VehiclePlate, dto.VehicleMake, dto.VehicleColor)
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var activeDeliveryID *kernel.UUID
	if dto.ActiveDeliveryID != nil {
		orderID, idErr := kernel.UUIDFromBytes((*dto.ActiveDeliveryID)[:])
		if idErr != nil {
			return nil, idErr
		}
		activeDeliveryID = &orderID
	}

	var locationFix *driver.LocationFix
	if dto.Latitude != nil && dto.Longitude != nil && dto.LocationUpdatedAt != nil {
		location, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		fix, fixErr := driver.NewLocationFix(location, dto.Accuracy, dto.Heading, dto.Speed, *dto.LocationUpdatedAt)
		if fixErr != nil {
			return nil, fixErr
		}
		locationFix = &fix
	}

	stats, err := driver.RestoreStats(
		dto.Stats.TotalDeliveries, dto.Stats.CompletedToday, dto.Stats.CompletedThisWeek, dto.Stats.CompletedThisMonth,
		dto.Stats.TotalEarnings, dto.Stats.EarningsToday, dto.Stats.EarningsThisWeek, dto.Stats.EarningsThisMonth,
		dto.Stats.AverageDeliveryTime, dto.Stats.AverageRating,
		dto.Stats.TotalRatings,
		dto.Stats.LastDeliveryAt,
	)
	if err != nil {
		return nil, err
	}

	ratings := make([]driver.Rating, 0, len(dto.Ratings))
	for _, r := range dto.Ratings {
		orderID, idErr := kernel.UUIDFromBytes(r.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		rating, ratingErr := driver.NewRating(orderID, r.Value, r.Comment, r.CreatedAt)
		if ratingErr != nil {
			return nil, ratingErr
		}
		ratings = append(ratings, rating)
	}

	return driver.RestoreDriver(driver.RestoreDriverParams{
		ID:     id,
		AuthID: dto.AuthID,
		Name:   dto.Name,
		Email:  dto.Email,
		Phone:  dto.Phone,

		Vehicle: vehicle,

		Status:           status,
		ActiveDeliveryID: activeDeliveryID,
		LocationFix:      locationFix,

		Stats:   stats,
		Ratings: ratings,

		EmailVerified:     dto.EmailVerified,
		PhoneVerified:     dto.PhoneVerified,
		DocumentsVerified: dto.DocumentsVerified,

		PushToken: dto.PushToken,

		IsDeleted: dto.IsDeleted,
		DeletedAt: dto.DeletedAt,
	})
}
