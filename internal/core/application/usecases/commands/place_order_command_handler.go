package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// PlaceOrderCommandHandler resolves the references of a placement request,
// builds the order with its price snapshot and persists it.
//
// When the command carries an idempotency key and a store is configured, a
// replay of the same key by the same customer returns the order created the
// first time instead of a duplicate.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, idempotencyStore, policy, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // restaurant, address or a menu item is missing
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    // the same key is being processed right now
//	}
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	idempotency ports.IdempotencyStore
	policy      services.AccessPolicy
	builder     services.OrderBuilder
	logger      *slog.Logger
}

// NewPlaceOrderCommandHandler creates the handler. idempotency may be nil, in
// which case keys are ignored.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	idempotency ports.IdempotencyStore,
	policy services.AccessPolicy,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		idempotency: idempotency,
		policy:      policy,
		builder:     services.NewOrderBuilder(),
		logger:      logger.With("component", "place-order"),
	}
}

// Handle places the order and returns its id.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := h.policy.AuthorizeRole(cmd.Actor(), services.ActionPlaceOrder); err != nil {
		return kernel.UUID{}, err
	}

	key := cmd.IdempotencyKey()
	if key == "" || h.idempotency == nil {
		return h.place(ctx, cmd)
	}

	scope := cmd.Actor().ID().String()
	existing, done, err := h.idempotency.Reserve(ctx, scope, key)
	if err != nil {
		return kernel.UUID{}, err
	}
	if done {
		return existing, nil
	}

	orderID, err := h.place(ctx, cmd)
	if err != nil {
		h.release(ctx, scope, key)
		return kernel.UUID{}, err
	}

	if err = h.idempotency.Complete(ctx, scope, key, orderID); err != nil {
		h.logger.ErrorContext(ctx, "failed to bind idempotency key to the placed order",
			"scope", scope, "key", key, "order_id", orderID.String(), "error", err)
		// a pending key would answer every retry with a conflict until it expires
		h.release(ctx, scope, key)
	}
	return orderID, nil
}

func (h PlaceOrderCommandHandler) release(ctx context.Context, scope, key string) {
	if err := h.idempotency.Release(ctx, scope, key); err != nil {
		h.logger.ErrorContext(ctx, "failed to release idempotency key",
			"scope", scope, "key", key, "error", err)
	}
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return kernel.UUID{}, err
	}

	address, err := uow.AddressRepository().Get(ctx, cmd.AddressID())
	if err != nil {
		return kernel.UUID{}, err
	}

	menuItems := uow.MenuItemRepository()
	requested := make([]services.RequestedItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		menuItem, getErr := menuItems.Get(ctx, item.MenuItemID)
		if getErr != nil {
			return kernel.UUID{}, getErr
		}
		requested = append(requested, services.RequestedItem{MenuItem: menuItem, Quantity: item.Quantity})
	}

	o, err := h.builder.Build(
		cmd.Actor().ID(), restaurant, address, requested, cmd.PaymentMethod(), time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
