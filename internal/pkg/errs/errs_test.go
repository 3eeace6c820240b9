package errs_test

import (
	"errors"
	"testing"

	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("parcelID", "X100")

		assert.Equal(t, "parcelID", err.ParamName)
		assert.Equal(t, "X100", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: X100", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store is empty")
		err := errs.NewObjectNotFoundErrorWithCause("parcelID", "X100", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: parcelID, ID is: X100 (cause: store is empty)",
			err.Error())
	})

	t.Run("non string identifiers are formatted", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("seq", 7)
		assert.Equal(t, "object not found: 7", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("length")

		assert.Equal(t, "length", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: length", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New(`strconv.ParseFloat: parsing "abc": invalid syntax`)
		err := errs.NewValueIsInvalidErrorWithCause("length", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			`value is invalid: length (cause: strconv.ParseFloat: parsing "abc": invalid syntax)`,
			err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("seq", 0, 1, "unbounded")

		assert.Equal(t, "seq", err.ParamName)
		assert.Equal(t, 0, err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 0 is seq, min value is 1, max value is unbounded", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("negative weight")
		err := errs.NewValueIsOutOfRangeErrorWithCause("weight", -5.5, 0, 100, cause)

		assert.Equal(t,
			"value is out of range: -5.5 is weight, min value is 0, max value is 100 (cause: negative weight)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "Alice\nBob", 0, 10)
		assert.Contains(t, err.Error(), "Alice Bob")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank after trim")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "value is required: name (cause: blank after trim)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("parcelID", "X1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("days"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("seq", 0, 1, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)

	joined := errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("days"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
