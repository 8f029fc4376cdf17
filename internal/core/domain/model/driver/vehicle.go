package driver

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// VehicleType enumerates the supported vehicle categories.
type VehicleType int

const (
	// VehicleTypeUnknown represents an invalid or undefined vehicle type.
	VehicleTypeUnknown VehicleType = iota

	// VehicleTypeBike is a motorbike.
	VehicleTypeBike

	// VehicleTypeCar is a car.
	VehicleTypeCar

	// VehicleTypeScooter is a motor scooter.
	VehicleTypeScooter

	// VehicleTypeBicycle is a pedal bicycle.
	VehicleTypeBicycle
)

func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleTypeUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleTypeBike:    "bike",
		VehicleTypeCar:     "car",
		VehicleTypeScooter: "scooter",
		VehicleTypeBicycle: "bicycle",
	}
}

// VehicleTypeFromString parses a vehicle type from its wire representation.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType", fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks if the VehicleType value is valid.
func (vt VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[vt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleType", fmt.Errorf("%d is not a valid vehicle type", vt))
	}
	return nil
}

// String returns the wire name of the vehicle type.
func (vt VehicleType) String() string {
	if str, ok := getValidVehicleTypeStrings()[vt]; ok {
		return str
	}
	return "unknown"
}

// Vehicle is an immutable value object describing the vehicle a driver
// operates. The plate number is required; make and color are free-form
// descriptive fields and may be empty.
type Vehicle struct {
	vehicleType VehicleType
	plateNumber string
	make        string
	color       string
	guard       guard.ConstructorGuard
}

// NewVehicle creates a Vehicle with the given type and plate number.
// Returns a validation error for an invalid type or an empty plate number.
func NewVehicle(vehicleType VehicleType, plateNumber, vehicleMake, color string) (Vehicle, error) {
	if err := vehicleType.Validate(); err != nil {
		return Vehicle{}, err
	}
	if plateNumber == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("plateNumber")
	}

	return Vehicle{
		vehicleType: vehicleType,
		plateNumber: plateNumber,
		make:        vehicleMake,
		color:       color,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Type returns the vehicle category.
func (v Vehicle) Type() VehicleType {
	return v.vehicleType
}

// PlateNumber returns the registration plate number.
func (v Vehicle) PlateNumber() string {
	return v.plateNumber
}

// Make returns the vehicle make, possibly empty.
func (v Vehicle) Make() string {
	return v.make
}

// Color returns the vehicle color, possibly empty.
func (v Vehicle) Color() string {
	return v.color
}

// Validate checks that the Vehicle was created via NewVehicle.
func (v Vehicle) Validate() error {
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}
