package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer's request for priced menu items from one restaurant. It
// is the aggregate root of the fulfillment lifecycle.
//
// Order follows these invariants:
//   - the line-item snapshot and totalPrice never change after creation
//   - status only moves along the transition table, Delivered and Cancelled are terminal
//   - payment status becomes Paid exactly when the order enters Delivered
//   - relations to users, restaurant and address are ids only
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	deliveryAddressID kernel.UUID

	// items is the price snapshot taken by the order builder
	items      []LineItem
	totalPrice kernel.Money

	status            Status
	deliveryPartnerID *kernel.UUID
	payment           Payment

	createdAt time.Time
	updatedAt time.Time

	// version is the persisted version the aggregate was read at; the
	// repository compares it on update
	version int

	events []kernel.DomainEvent

	isConstructed bool
}

// NewOrder creates a Pending order with a Pending payment and records a
// PlacedEvent.
//
// Parameters:
//   - id: identifier of the new order
//   - customerID, restaurantID, deliveryAddressID: references resolved by the order builder
//   - items: non-empty list of line items with their price snapshot
//   - method: chosen payment method
//   - now: creation timestamp
//
// totalPrice is computed here, once, as Σ quantity × unitPrice.
func NewOrder(
	id, customerID, restaurantID, deliveryAddressID kernel.UUID,
	items []LineItem,
	method PaymentMethod,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	payment, paymentErr := NewPayment(method)
	o.payment = payment

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddressID(deliveryAddressID),
		o.setItems(items),
		paymentErr,
	); err != nil {
		return nil, err
	}

	o.raise(newPlacedEvent(o, now))
	return o, nil
}

// RestoreOrder rebuilds an Order read from storage. No invariants are
// re-checked and no events are recorded.
func RestoreOrder(
	id, customerID, restaurantID, deliveryAddressID kernel.UUID,
	items []LineItem,
	totalPrice kernel.Money,
	status Status,
	deliveryPartnerID *kernel.UUID,
	payment Payment,
	createdAt, updatedAt time.Time,
	version int,
) *Order {
	copied := make([]LineItem, len(items))
	copy(copied, items)

	return &Order{
		id:                id,
		customerID:        customerID,
		restaurantID:      restaurantID,
		deliveryAddressID: deliveryAddressID,
		items:             copied,
		totalPrice:        totalPrice,
		status:            status,
		deliveryPartnerID: deliveryPartnerID,
		payment:           payment,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		version:           version,
		isConstructed:     true,
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) CustomerID() kernel.UUID        { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID      { return o.restaurantID }
func (o *Order) DeliveryAddressID() kernel.UUID { return o.deliveryAddressID }
func (o *Order) TotalPrice() kernel.Money       { return o.totalPrice }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) Payment() Payment               { return o.payment }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }
func (o *Order) Version() int                   { return o.version }

// Items returns a copy of the line-item snapshot.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// DeliveryPartner returns the assigned partner id, nil if unassigned.
func (o *Order) DeliveryPartner() *kernel.UUID {
	return o.deliveryPartnerID
}

// IsAssignedTo reports whether partnerID is the currently assigned partner.
func (o *Order) IsAssignedTo(partnerID kernel.UUID) bool {
	return o.deliveryPartnerID != nil && o.deliveryPartnerID.IsEqual(partnerID)
}

// ChangeStatus moves the order to target on behalf of an actor with role.
//
// This method enforces the following business rules:
//   - terminal orders never change
//   - target must be listed for (current status, role) in the transition table
//   - entering Delivered marks the payment Paid regardless of the method
//
// Ownership of the order (which vendor, partner or customer) is checked by
// the caller before this method is reached.
//
// Returns:
//   - nil on success, a StatusChangedEvent is recorded
//   - AccessDeniedError when the transition is not permitted
//   - ValueIsInvalidError when target is not a lifecycle state
func (o *Order) ChangeStatus(role kernel.Role, target Status, now time.Time) error {
	next, err := o.status.TransitionTo(role, target)
	if err != nil {
		return err
	}

	from := o.status
	o.status = next
	if next == Delivered {
		o.payment = o.payment.markPaid()
	}
	o.updatedAt = now

	o.raise(StatusChangedEvent{
		BaseEvent:  kernel.NewBaseEvent(EventNameStatusChanged, o.id, now),
		CustomerID: o.customerID,
		From:       from,
		To:         next,
		ChangedBy:  role,
	})
	return nil
}

// AssignDeliveryPartner binds partnerID to the order. Reassignment overwrites
// the previous partner without keeping history; the event carries the
// previous id so it can be notified.
//
// Returns:
//   - nil on success
//   - AccessDeniedError when the order is already terminal
func (o *Order) AssignDeliveryPartner(partnerID kernel.UUID, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewAccessDeniedErrorWithCause(
			"assign delivery partner",
			fmt.Errorf("order is %s", o.status),
		)
	}

	previous := o.deliveryPartnerID
	o.deliveryPartnerID = &partnerID
	o.updatedAt = now

	o.raise(DeliveryPartnerAssignedEvent{
		BaseEvent:         kernel.NewBaseEvent(EventNameDeliveryPartnerAssigned, o.id, now),
		PartnerID:         partnerID,
		PreviousPartnerID: previous,
	})
	return nil
}

// AdvanceVersion is called by the repository after a successful conditional
// write so that a further update of the same instance compares against the
// stored version.
func (o *Order) AdvanceVersion() {
	o.version++
}

// DomainEvents returns the events recorded since the order was loaded.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	out := make([]kernel.DomainEvent, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents drops recorded events once they were published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("addressId", err)
	}
	o.deliveryAddressID = id
	return nil
}

// setItems copies items and computes totalPrice.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	copied := make([]LineItem, 0, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
		total = total.Add(item.Subtotal())
		copied = append(copied, item)
	}

	o.items = copied
	o.totalPrice = total
	return nil
}
