package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]kernel.Role{
		"customer": kernel.RoleCustomer,
		"vendor":   kernel.RoleVendor,
		"delivery": kernel.RoleDelivery,
		"ADMIN":    kernel.RoleAdmin,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := kernel.ParseRole(in)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("unknown role is invalid", func(t *testing.T) {
		_, err := kernel.ParseRole("courier")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("literal unknown is not accepted", func(t *testing.T) {
		_, err := kernel.ParseRole("unknown")

		assert.Error(t, err)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := kernel.NewActor(id, kernel.RoleVendor)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.Is(kernel.RoleVendor))
		assert.False(t, a.Is(kernel.RoleAdmin))
	})

	t.Run("joins id and role errors", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.RoleUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
