package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("line item not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	errRatingNotConstructed := errors.New("Rating must be created via NewRating")

	type rating struct {
		value int
		guard guard.ConstructorGuard
	}

	newRating := func(v int) (rating, error) {
		if v < 1 || v > 5 {
			return rating{}, errors.New("rating out of range")
		}
		return rating{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		r, err := newRating(4)

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errRatingNotConstructed))
		assert.Equal(t, 4, r.value)
	})

	t.Run("literal_fails_validation", func(t *testing.T) {
		r := rating{value: 4}

		assert.Equal(t, errRatingNotConstructed, r.guard.Validate(errRatingNotConstructed))
	})
}
