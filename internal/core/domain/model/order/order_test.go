package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, price string, qty int) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), qty, money(t, price))
	require.NoError(t, err)
	return li
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{lineItem(t, "100", 2), lineItem(t, "50", 1)},
		order.PaymentMethodCOD,
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should snapshot prices and compute total", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "250.00", o.TotalPrice().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentStatusPending, o.Payment().Status())
		assert.Equal(t, order.PaymentMethodCOD, o.Payment().Method())
		assert.Nil(t, o.DeliveryPartner())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should record placed event", func(t *testing.T) {
		o := newPendingOrder(t)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		placed, ok := events[0].(order.PlacedEvent)
		require.True(t, ok)
		assert.Equal(t, order.EventNamePlaced, placed.EventName())
		assert.True(t, placed.AggregateID().IsEqual(o.ID()))
		assert.Equal(t, "250.00", placed.TotalPrice.String())
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, order.PaymentMethodUPI, now,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var zero kernel.UUID

		o, err := order.NewOrder(zero, zero, zero, zero, []order.LineItem{{}}, order.PaymentMethodUnknown, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "restaurantId")
		assert.Contains(t, err.Error(), "addressId")
		assert.Contains(t, err.Error(), "items[0]")
		assert.Contains(t, err.Error(), "paymentMethod")
	})

	t.Run("items returned are a copy", func(t *testing.T) {
		o := newPendingOrder(t)

		items := o.Items()
		items[0] = lineItem(t, "1", 1)

		assert.Equal(t, "100.00", o.Items()[0].UnitPrice().String())
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, q := range []int{0, -3} {
			_, err := order.NewLineItem(kernel.NewUUID(), q, money(t, "10"))

			require.Error(t, err)
			assert.Contains(t, err.Error(), "quantity is invalid")
		}
	})

	t.Run("subtotal", func(t *testing.T) {
		assert.Equal(t, "37.50", lineItem(t, "12.50", 3).Subtotal().String())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("vendor accepts then cannot deliver", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ChangeStatus(kernel.RoleVendor, order.Accepted, now))
		assert.Equal(t, order.Accepted, o.Status())

		err := o.ChangeStatus(kernel.RoleVendor, order.Delivered, now)
		assert.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("full lifecycle marks payment paid on delivery only", func(t *testing.T) {
		o := newPendingOrder(t)
		steps := []struct {
			role kernel.Role
			to   order.Status
		}{
			{kernel.RoleVendor, order.Accepted},
			{kernel.RoleVendor, order.Preparing},
			{kernel.RoleVendor, order.ReadyForPickup},
			{kernel.RoleDelivery, order.OutForDelivery},
		}
		for _, s := range steps {
			require.NoError(t, o.ChangeStatus(s.role, s.to, now))
			assert.Equal(t, order.PaymentStatusPending, o.Payment().Status(), s.to.String())
		}

		later := now.Add(time.Hour)
		require.NoError(t, o.ChangeStatus(kernel.RoleDelivery, order.Delivered, later))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, order.PaymentStatusPaid, o.Payment().Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("electronic payment is also marked paid", func(t *testing.T) {
		o := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, money(t, "10"), order.OutForDelivery, nil,
			order.RestorePayment(order.PaymentMethodCard, order.PaymentStatusPending, "tx-1"),
			now, now, 4,
		)

		require.NoError(t, o.ChangeStatus(kernel.RoleDelivery, order.Delivered, now))
		assert.Equal(t, order.PaymentStatusPaid, o.Payment().Status())
		assert.Equal(t, "tx-1", o.Payment().TransactionID())
	})

	t.Run("customer cannot cancel delivered order", func(t *testing.T) {
		o := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, money(t, "10"), order.Delivered, nil,
			order.RestorePayment(order.PaymentMethodCOD, order.PaymentStatusPaid, ""),
			now, now, 6,
		)

		err := o.ChangeStatus(kernel.RoleCustomer, order.Cancelled, now)

		assert.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("records status changed event", func(t *testing.T) {
		o := newPendingOrder(t)
		o.ClearDomainEvents()

		require.NoError(t, o.ChangeStatus(kernel.RoleCustomer, order.Cancelled, now))

		events := o.DomainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(order.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, order.Pending, changed.From)
		assert.Equal(t, order.Cancelled, changed.To)
		assert.Equal(t, kernel.RoleCustomer, changed.ChangedBy)
		assert.True(t, changed.CustomerID.IsEqual(o.CustomerID()))
	})

	t.Run("failed transition records nothing", func(t *testing.T) {
		o := newPendingOrder(t)
		o.ClearDomainEvents()

		require.Error(t, o.ChangeStatus(kernel.RoleAdmin, order.Accepted, now))
		assert.Empty(t, o.DomainEvents())
	})
}

func TestOrder_AssignDeliveryPartner(t *testing.T) {
	t.Run("assigns and reassigns", func(t *testing.T) {
		o := newPendingOrder(t)
		o.ClearDomainEvents()
		first, second := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, o.AssignDeliveryPartner(first, now))
		require.NoError(t, o.AssignDeliveryPartner(second, now))

		assert.True(t, o.IsAssignedTo(second))
		assert.False(t, o.IsAssignedTo(first))

		events := o.DomainEvents()
		require.Len(t, events, 2)
		last, ok := events[1].(order.DeliveryPartnerAssignedEvent)
		require.True(t, ok)
		require.NotNil(t, last.PreviousPartnerID)
		assert.True(t, last.PreviousPartnerID.IsEqual(first))
	})

	t.Run("rejects terminal order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(kernel.RoleCustomer, order.Cancelled, now))

		err := o.AssignDeliveryPartner(kernel.NewUUID(), now)

		assert.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Nil(t, o.DeliveryPartner())
	})

	t.Run("rejects zero partner id", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Error(t, o.AssignDeliveryPartner(kernel.UUID{}, now))
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}
