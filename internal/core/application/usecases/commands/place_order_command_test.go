package commands_test

import (
	"strings"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	actor := mustActor(kernel.RoleCustomer)
	restaurantID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	items := []commands.PlaceOrderItem{{MenuItemID: kernel.NewUUID(), Quantity: 1}}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(actor, restaurantID, items, addressID, "net-banking", "abc")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.PaymentMethodNetBanking, cmd.PaymentMethod())
		assert.Equal(t, "abc", cmd.IdempotencyKey())
		assert.Len(t, cmd.Items(), 1)
	})

	tests := []struct {
		name    string
		items   []commands.PlaceOrderItem
		method  string
		key     string
		wantErr error
	}{
		{"no items", nil, "COD", "", errs.ErrValueIsRequired},
		{"zero quantity", []commands.PlaceOrderItem{{MenuItemID: kernel.NewUUID()}}, "COD", "", errs.ErrValueIsInvalid},
		{"empty menu item id", []commands.PlaceOrderItem{{Quantity: 1}}, "COD", "", errs.ErrValueIsRequired},
		{"quantity above limit", []commands.PlaceOrderItem{{MenuItemID: kernel.NewUUID(), Quantity: 100000000}}, "COD", "", errs.ErrValueIsOutOfRange},
		{"too many items", manyItems(commands.MaxOrderItems + 1), "COD", "", errs.ErrValueIsOutOfRange},
		{"unknown payment method", items, "cheque", "", errs.ErrValueIsInvalid},
		{"key too long", items, "COD", strings.Repeat("k", commands.MaxIdempotencyKeyLength+1), errs.ErrValueIsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewPlaceOrderCommand(actor, restaurantID, tt.items, addressID, tt.method, tt.key)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("items are copied", func(t *testing.T) {
		in := []commands.PlaceOrderItem{{MenuItemID: kernel.NewUUID(), Quantity: 1}}
		cmd, err := commands.NewPlaceOrderCommand(actor, restaurantID, in, addressID, "COD", "")
		require.NoError(t, err)
		in[0].Quantity = 9
		assert.Equal(t, 1, cmd.Items()[0].Quantity)
	})
}

func manyItems(n int) []commands.PlaceOrderItem {
	items := make([]commands.PlaceOrderItem, n)
	for i := range items {
		items[i] = commands.PlaceOrderItem{MenuItemID: kernel.NewUUID(), Quantity: 1}
	}
	return items
}
