package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered menu item together with the price it had when the
// order was built. It is a copy, never a live reference to the menu.
type LineItem struct { //nolint:recvcheck
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	guard      guard.ConstructorGuard
}

// NewLineItem validates and creates a LineItem.
func NewLineItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	li := LineItem{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		li.setMenuItemID(menuItemID),
		li.setQuantity(quantity),
		li.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}
	return li, nil
}

func (li LineItem) MenuItemID() kernel.UUID { return li.menuItemID }

func (li LineItem) Quantity() int { return li.quantity }

func (li LineItem) UnitPrice() kernel.Money { return li.unitPrice }

// Subtotal returns quantity × unitPrice.
func (li LineItem) Subtotal() kernel.Money {
	sub, _ := li.unitPrice.Multiply(li.quantity) // quantity is positive by construction
	return sub
}

// Validate fails for a zero-value LineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li *LineItem) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.menuItemID = id
	return nil
}

func (li *LineItem) setQuantity(q int) error {
	if q <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", q))
	}
	li.quantity = q
	return nil
}

func (li *LineItem) setUnitPrice(p kernel.Money) error {
	if err := p.Validate(); err != nil {
		return err
	}
	li.unitPrice = p
	return nil
}
