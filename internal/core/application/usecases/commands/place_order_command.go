package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// MaxIdempotencyKeyLength bounds client-supplied idempotency keys.
const MaxIdempotencyKeyLength = 255

// Bounds of one placement. Together with the stored price precision they keep
// the order total representable.
const (
	MaxOrderItems   = 100
	MaxItemQuantity = 1000
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderItem is one requested line: a menu item and how many of it.
type PlaceOrderItem struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// PlaceOrderCommand represents a customer's request to order items from one
// restaurant.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(actor, restaurantID, []PlaceOrderItem{
//	    {MenuItemID: biryaniID, Quantity: 2},
//	}, addressID, "UPI", c.Request().Header.Get("Idempotency-Key"))
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck
	actor          kernel.Actor
	restaurantID   kernel.UUID
	items          []PlaceOrderItem
	addressID      kernel.UUID
	paymentMethod  order.PaymentMethod
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the request shape. References are resolved
// by the handler.
func NewPlaceOrderCommand(
	actor kernel.Actor,
	restaurantID kernel.UUID,
	items []PlaceOrderItem,
	addressID kernel.UUID,
	paymentMethod string,
	idempotencyKey string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setAddressID(addressID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Actor() kernel.Actor                { return c.actor }
func (c PlaceOrderCommand) RestaurantID() kernel.UUID          { return c.restaurantID }
func (c PlaceOrderCommand) AddressID() kernel.UUID             { return c.addressID }
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

// IdempotencyKey is empty when the client did not send one.
func (c PlaceOrderCommand) IdempotencyKey() string { return c.idempotencyKey }

// Items returns a copy of the requested lines.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	out := make([]PlaceOrderItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *PlaceOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	c.restaurantID = id
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if len(items) > MaxOrderItems {
		return errs.NewValueIsOutOfRangeError("items length", len(items), 1, MaxOrderItems)
	}
	var problems []error
	for i, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].menuItemId", i), err))
		}
		switch {
		case item.Quantity <= 0:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i), fmt.Errorf("%d is not greater than 0", item.Quantity)))
		case item.Quantity > MaxItemQuantity:
			problems = append(problems, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].quantity", i), item.Quantity, 1, MaxItemQuantity))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	c.items = make([]PlaceOrderItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("addressId", err)
	}
	c.addressID = id
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method string) error {
	m, err := order.ParsePaymentMethod(method)
	if err != nil {
		return err
	}
	c.paymentMethod = m
	return nil
}

func (c *PlaceOrderCommand) setIdempotencyKey(key string) error {
	if len(key) > MaxIdempotencyKeyLength {
		return errs.NewValueIsOutOfRangeError("idempotencyKey length", len(key), 0, MaxIdempotencyKeyLength)
	}
	c.idempotencyKey = key
	return nil
}
