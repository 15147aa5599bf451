package services

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// RequestedItem is a resolved menu item and the quantity the customer asked for.
type RequestedItem struct {
	MenuItem *catalog.MenuItem
	Quantity int
}

// OrderBuilder validates a placement request whose references were already
// resolved and produces the order with its line-item snapshot.
//
// Business rules:
//   - the item list is non-empty and every quantity is positive
//   - the delivery address belongs to the customer; another user's address is
//     reported as not found so its existence does not leak
//   - every menu item is on the restaurant's menu and available
//   - unitPrice is the menu item's price at build time
//
// Example usage:
//
//	builder := services.NewOrderBuilder()
//	o, err := builder.Build(customerID, restaurant, address, items, order.PaymentMethodCOD, time.Now())
type OrderBuilder struct{}

// NewOrderBuilder creates an OrderBuilder.
func NewOrderBuilder() OrderBuilder {
	return OrderBuilder{}
}

// Build creates the order. It never mutates restaurant or menu state.
func (OrderBuilder) Build(
	customerID kernel.UUID,
	restaurant *catalog.Restaurant,
	address *account.Address,
	requested []RequestedItem,
	method order.PaymentMethod,
	now time.Time,
) (*order.Order, error) {
	if restaurant == nil {
		return nil, errs.NewValueIsRequiredError("restaurant")
	}
	if address == nil {
		return nil, errs.NewValueIsRequiredError("address")
	}
	if len(requested) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if !address.BelongsTo(customerID) {
		return nil, errs.NewObjectNotFoundError("addressId", address.ID().String())
	}

	items := make([]order.LineItem, 0, len(requested))
	var problems []error
	for i, r := range requested {
		item, err := buildLineItem(restaurant, r)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return order.NewOrder(kernel.NewUUID(), customerID, restaurant.ID(), address.ID(), items, method, now)
}

func buildLineItem(restaurant *catalog.Restaurant, r RequestedItem) (order.LineItem, error) {
	if r.MenuItem == nil {
		return order.LineItem{}, errs.NewValueIsRequiredError("menuItem")
	}
	if !r.MenuItem.BelongsTo(restaurant.ID()) {
		return order.LineItem{}, fmt.Errorf("menu item %s is not served by restaurant %s", r.MenuItem.ID(), restaurant.ID())
	}
	if !r.MenuItem.IsAvailable() {
		return order.LineItem{}, fmt.Errorf("menu item %s is not available", r.MenuItem.ID())
	}
	return order.NewLineItem(r.MenuItem.ID(), r.Quantity, r.MenuItem.Price())
}
