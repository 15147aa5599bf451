package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand asks to move an order to a new lifecycle status.
type UpdateOrderStatusCommand struct { //nolint:recvcheck
	actor   kernel.Actor
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand parses the target status name.
func NewUpdateOrderStatusCommand(actor kernel.Actor, orderID kernel.UUID, target string) (UpdateOrderStatusCommand, error) {
	status, statusErr := order.ParseStatus(target)
	if err := errors.Join(actor.Validate(), orderID.Validate(), statusErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{
		actor:   actor,
		orderID: orderID,
		target:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Actor() kernel.Actor  { return c.actor }
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Target() order.Status { return c.target }
