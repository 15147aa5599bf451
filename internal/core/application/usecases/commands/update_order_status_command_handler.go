package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler runs the order state machine.
//
// The actor must own the order in the sense of its role: the vendor owns the
// restaurant, the delivery partner is the assigned one, the customer placed
// it. The transition itself is checked against the order's current status.
// The write is a compare-and-swap on the order version, so of two concurrent
// transitions based on the same read only one succeeds; the other fails with
// errs.VersionIsInvalidError.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderStatusCommandHandler creates the handler.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle applies the transition and returns the updated order.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeRole(cmd.Actor(), services.ActionChangeOrderStatus); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	res, err := orderResource(ctx, uow, o, cmd.Actor())
	if err != nil {
		return nil, err
	}
	if err = h.policy.Authorize(cmd.Actor(), services.ActionChangeOrderStatus, res); err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Actor().Role(), cmd.Target(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// orderResource collects the ownership facts of o. The restaurant is only
// loaded for vendors, who are the only ones judged by it.
func orderResource(ctx context.Context, uow CatalogRepoFactory, o *order.Order, actor kernel.Actor) (services.Resource, error) {
	customerID := o.CustomerID()
	res := services.Resource{
		OrderCustomerID:   &customerID,
		AssignedPartnerID: o.DeliveryPartner(),
	}
	if !actor.Is(kernel.RoleVendor) {
		return res, nil
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return services.Resource{}, err
	}
	ownerID := restaurant.OwnerID()
	res.RestaurantOwnerID = &ownerID
	return res, nil
}
