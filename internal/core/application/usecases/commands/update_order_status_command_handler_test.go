package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatusHandler(uows ...*MockUoW) commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(&MockOrderUoWFactory{uows: uows}, services.NewDefaultAccessPolicy())
}

func TestUpdateOrderStatusCommandHandler_Handle_VendorAcceptsOwnOrder(t *testing.T) {
	ctx := t.Context()
	vendor := mustActor(kernel.RoleVendor)
	restaurant := catalog.RestoreRestaurant(kernel.NewUUID(), vendor.ID(), "Spice Route", true, 0)
	o := restoredOrder(kernel.NewUUID(), restaurant.ID(), order.Pending, nil)
	uow := newMockUoW()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.restaurants.On("Get", mock.Anything, restaurant.ID()).Return(restaurant, nil).Once(),
		uow.orders.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewUpdateOrderStatusCommand(vendor, o.ID(), "Accepted")
	require.NoError(t, err)

	updated, err := newStatusHandler(uow).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, updated.Status())
	uow.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ForeignVendorIsDenied(t *testing.T) {
	ctx := t.Context()
	vendor := mustActor(kernel.RoleVendor)
	restaurant := catalog.RestoreRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Elsewhere", true, 0)
	o := restoredOrder(kernel.NewUUID(), restaurant.ID(), order.Pending, nil)
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.restaurants.On("Get", mock.Anything, restaurant.ID()).Return(restaurant, nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(vendor, o.ID(), "Accepted")
	require.NoError(t, err)

	_, err = newStatusHandler(uow).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, order.Pending, o.Status())
	uow.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_SkippingStateIsDenied(t *testing.T) {
	ctx := t.Context()
	vendor := mustActor(kernel.RoleVendor)
	restaurant := catalog.RestoreRestaurant(kernel.NewUUID(), vendor.ID(), "Spice Route", true, 0)
	o := restoredOrder(kernel.NewUUID(), restaurant.ID(), order.Pending, nil)
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.restaurants.On("Get", mock.Anything, restaurant.ID()).Return(restaurant, nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(vendor, o.ID(), "Preparing")
	require.NoError(t, err)

	_, err = newStatusHandler(uow).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	uow.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CustomerCancelsPending(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	o := restoredOrder(customer.ID(), kernel.NewUUID(), order.Pending, nil)
	uow := newMockUoW()

	uow.expectTx(ctx, true, nil)
	uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.orders.On("Update", mock.Anything, o).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(customer, o.ID(), "Cancelled")
	require.NoError(t, err)

	updated, err := newStatusHandler(uow).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
	uow.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_DeliveredMarksPaid(t *testing.T) {
	ctx := t.Context()
	partner := mustActor(kernel.RoleDelivery)
	partnerID := partner.ID()
	o := restoredOrder(kernel.NewUUID(), kernel.NewUUID(), order.OutForDelivery, &partnerID)
	uow := newMockUoW()

	uow.expectTx(ctx, true, nil)
	uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.orders.On("Update", mock.Anything, o).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(partner, o.ID(), "Delivered")
	require.NoError(t, err)

	updated, err := newStatusHandler(uow).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, updated.Status())
	assert.Equal(t, order.PaymentStatusPaid, updated.Payment().Status())
	uow.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_UnassignedPartnerIsDenied(t *testing.T) {
	ctx := t.Context()
	partner := mustActor(kernel.RoleDelivery)
	otherID := kernel.NewUUID()
	o := restoredOrder(kernel.NewUUID(), kernel.NewUUID(), order.ReadyForPickup, &otherID)
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(partner, o.ID(), "OutForDelivery")
	require.NoError(t, err)

	_, err = newStatusHandler(uow).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	uow.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_AdminIsDeniedBeforeLoading(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(mustActor(kernel.RoleAdmin), kernel.NewUUID(), "Accepted")
	require.NoError(t, err)

	_, err = newStatusHandler().Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestUpdateOrderStatusCommandHandler_Handle_ConcurrentWriteLoses(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	o := restoredOrder(customer.ID(), kernel.NewUUID(), order.Pending, nil)
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.orders.On("Update", mock.Anything, o).Return(errs.NewVersionIsInvalidError("order")).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(customer, o.ID(), "Cancelled")
	require.NoError(t, err)

	_, err = newStatusHandler(uow).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	orderID := kernel.NewUUID()
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.orders.On("Get", mock.Anything, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(customer, orderID, "Cancelled")
	require.NoError(t, err)

	_, err = newStatusHandler(uow).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(mustActor(kernel.RoleCustomer), kernel.NewUUID(), "Cancelled")
	require.NoError(t, err)

	_, err = newStatusHandler(uow).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.assertExpectations(t)
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	actor := mustActor(kernel.RoleVendor)

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, kernel.NewUUID(), "readyforpickup")
	require.NoError(t, err)
	assert.Equal(t, order.ReadyForPickup, cmd.Target())

	_, err = commands.NewUpdateOrderStatusCommand(actor, kernel.NewUUID(), "Teleported")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateOrderStatusCommand(actor, kernel.UUID{}, "Accepted")
	require.Error(t, err)

	require.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
