package order

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

const (
	EventNamePlaced                  = "order.placed"
	EventNameStatusChanged           = "order.status_changed"
	EventNameDeliveryPartnerAssigned = "order.delivery_partner_assigned"
)

// PlacedEvent is recorded by NewOrder.
type PlacedEvent struct {
	kernel.BaseEvent
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	TotalPrice   kernel.Money
}

// StatusChangedEvent is recorded by a successful ChangeStatus.
type StatusChangedEvent struct {
	kernel.BaseEvent
	CustomerID kernel.UUID
	From       Status
	To         Status
	ChangedBy  kernel.Role
}

// DeliveryPartnerAssignedEvent is recorded by AssignDeliveryPartner.
// PreviousPartnerID is set when an earlier assignment was overwritten, so a
// consumer can notify the partner who lost the order.
type DeliveryPartnerAssignedEvent struct {
	kernel.BaseEvent
	PartnerID         kernel.UUID
	PreviousPartnerID *kernel.UUID
}

func newPlacedEvent(o *Order, at time.Time) PlacedEvent {
	return PlacedEvent{
		BaseEvent:    kernel.NewBaseEvent(EventNamePlaced, o.id, at),
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		TotalPrice:   o.totalPrice,
	}
}
