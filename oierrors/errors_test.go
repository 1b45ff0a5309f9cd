package oierrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidArgumentError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &InvalidArgumentError{Message: "input collection is missing or empty"}
		assert.Equal(t, "invalid argument: input collection is missing or empty", err.Error())
	})

	t.Run("Is matches ErrInvalidArgument", func(t *testing.T) {
		err := &InvalidArgumentError{Message: "x"}
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &InvalidArgumentError{Message: "x"}
		assert.False(t, errors.Is(err, ErrMissingReference))
	})
}

func TestMissingReferenceError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &MissingReferenceError{TableType: "wavelength", Name: "GRAVITY_SC", DataTableIndex: 3}
		assert.Equal(t, `missing reference: wavelength "GRAVITY_SC" (data table #3)`, err.Error())
	})

	t.Run("Is matches ErrMissingReference", func(t *testing.T) {
		err := &MissingReferenceError{TableType: "array", Name: "VLTI"}
		assert.True(t, errors.Is(err, ErrMissingReference))
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &MissingReferenceError{}
		assert.False(t, errors.Is(err, ErrInvalidArgument))
	})
}

func TestEmptySelectionError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &EmptySelectionError{}
		assert.Equal(t, "empty selection: selector result is nil, returning primary-HDU-only file", err.Error())
	})

	t.Run("Is matches ErrEmptySelection", func(t *testing.T) {
		err := &EmptySelectionError{}
		assert.True(t, errors.Is(err, ErrEmptySelection))
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &EmptySelectionError{}
		assert.False(t, errors.Is(err, ErrInvalidArgument))
	})
}
