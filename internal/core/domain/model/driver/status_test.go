package driver_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []driver.Status{driver.StatusOffline, driver.StatusAvailable, driver.StatusOnDelivery} {
		require.NoError(t, s.Validate())
	}

	require.ErrorIs(t, driver.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, driver.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "offline", driver.StatusOffline.String())
	assert.Equal(t, "available", driver.StatusAvailable.String())
	assert.Equal(t, "on_delivery", driver.StatusOnDelivery.String())
	assert.Equal(t, "unknown", driver.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	for _, tc := range []struct {
		raw    string
		status driver.Status
	}{
		{"offline", driver.StatusOffline},
		{"available", driver.StatusAvailable},
		{"on_delivery", driver.StatusOnDelivery},
	} {
		status, err := driver.StatusFromString(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.status, status)
	}

	_, err := driver.StatusFromString("busy")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestVehicleTypeFromString(t *testing.T) {
	for _, tc := range []struct {
		raw string
		vt  driver.VehicleType
	}{
		{"bike", driver.VehicleTypeBike},
		{"car", driver.VehicleTypeCar},
		{"scooter", driver.VehicleTypeScooter},
		{"bicycle", driver.VehicleTypeBicycle},
	} {
		vt, err := driver.VehicleTypeFromString(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.vt, vt)
		assert.Equal(t, tc.raw, vt.String())
	}

	_, err := driver.VehicleTypeFromString("truck")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewVehicle(t *testing.T) {
	t.Run("valid vehicle", func(t *testing.T) {
		v, err := driver.NewVehicle(driver.VehicleTypeCar, "A-99999", "Toyota", "white")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, driver.VehicleTypeCar, v.Type())
		assert.Equal(t, "A-99999", v.PlateNumber())
	})

	t.Run("missing plate is rejected", func(t *testing.T) {
		_, err := driver.NewVehicle(driver.VehicleTypeCar, "", "Toyota", "white")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		_, err := driver.NewVehicle(driver.VehicleTypeUnknown, "A-99999", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var v driver.Vehicle

		require.ErrorIs(t, v.Validate(), driver.ErrVehicleIsNotConstructed)
	})
}
