package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driverId", "d-123")

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "d-123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: d-123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("row scan failed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "d-123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: d-123 (cause: row scan failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 7 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("latitude", 95.0, -90.0, 90.0, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 95 is latitude, min value is -90, max value is 90 (cause: validation failed)",
			err.Error())
	})

	t.Run("value with newlines is sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("authId")

		assert.Equal(t, "authId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: authId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("authId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: authId (cause: missing required field)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("assign delivery", "driver is not available")

		assert.Equal(t, "assign delivery", err.Operation)
		assert.Equal(t, "driver is not available", err.Details)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: assign delivery: driver is not available", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("row already claimed")
		err := errs.NewConflictErrorWithCause("assign delivery", "driver is not available", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"conflict: assign delivery: driver is not available (cause: row already claimed)",
			err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("driverId", "d-1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 9, 1, 5), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewConflictError("complete delivery", "no active delivery"), errs.ErrConflict)
}
