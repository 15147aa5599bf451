package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// AssignDeliveryPartnerCommandHandler sets the order's delivery partner.
// Vendors may assign on orders of restaurants they own, admins on any order.
// A previous assignment is overwritten.
type AssignDeliveryPartnerCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewAssignDeliveryPartnerCommandHandler creates the handler.
func NewAssignDeliveryPartnerCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) AssignDeliveryPartnerCommandHandler {
	return AssignDeliveryPartnerCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle assigns the partner and returns the updated order.
//
// Returns:
//   - ObjectNotFoundError when the order is missing, or the partner is
//     missing or not a delivery user
//   - AccessDeniedError for a foreign vendor, other roles or a terminal order
func (h AssignDeliveryPartnerCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPartnerCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeRole(cmd.Actor(), services.ActionAssignDeliveryPartner); err != nil {
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
	if err = h.policy.Authorize(cmd.Actor(), services.ActionAssignDeliveryPartner, res); err != nil {
		return nil, err
	}

	partner, err := uow.UserRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPartnerId", cmd.PartnerID().String())
		}
		return nil, err
	}
	if !partner.IsDeliveryPartner() {
		return nil, errs.NewObjectNotFoundErrorWithCause("deliveryPartnerId", cmd.PartnerID().String(),
			fmt.Errorf("user has role %s", partner.Role()))
	}

	if err = o.AssignDeliveryPartner(partner.ID(), time.Now().UTC()); err != nil {
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
