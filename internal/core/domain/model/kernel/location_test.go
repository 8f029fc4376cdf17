package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"dubai marina", 25.2048, 55.2708},
			{"equator prime meridian", 0, 0},
			{"latitude min", -90, 10},
			{"latitude max", 90, 10},
			{"longitude min", 10, -180},
			{"longitude max", 10, 180},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				loc, err := kernel.NewLocation(tc.lat, tc.lon)

				require.NoError(t, err)
				require.NoError(t, loc.Validate())
				assert.InDelta(t, tc.lat, loc.Latitude(), 0)
				assert.InDelta(t, tc.lon, loc.Longitude(), 0)
			})
		}
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too small", -90.01, 0},
			{"latitude too large", 90.01, 0},
			{"longitude too small", 0, -180.01},
			{"longitude too large", 0, 180.01},
			{"both out of range", 100, 200},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewLocation(tc.lat, tc.lon)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var loc kernel.Location

		require.Error(t, loc.Validate())
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(25.2, 55.3)
	b, _ := kernel.NewLocation(25.2, 55.3)
	c, _ := kernel.NewLocation(25.2, 55.4)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestLocation_BoundingBox(t *testing.T) {
	t.Run("ten kilometer box", func(t *testing.T) {
		loc, _ := kernel.NewLocation(25.2, 55.3)

		minLat, maxLat, minLon, maxLon, err := loc.BoundingBox(10)

		require.NoError(t, err)
		delta := 10.0 / kernel.KilometersPerDegree
		assert.InDelta(t, 25.2-delta, minLat, 1e-9)
		assert.InDelta(t, 25.2+delta, maxLat, 1e-9)
		assert.InDelta(t, 55.3-delta, minLon, 1e-9)
		assert.InDelta(t, 55.3+delta, maxLon, 1e-9)
	})

	t.Run("negative radius is rejected", func(t *testing.T) {
		loc, _ := kernel.NewLocation(25.2, 55.3)

		_, _, _, _, err := loc.BoundingBox(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value location is rejected", func(t *testing.T) {
		var loc kernel.Location

		_, _, _, _, err := loc.BoundingBox(5)

		require.Error(t, err)
	})
}
