// Package events delivers committed order events to other services. Every
// publisher writes the same JSON Message, keyed by the order id so that the
// events of one order keep their relative order on a partitioned broker.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// Message is the wire form of a domain event.
type Message struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AggregateID string    `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredAt"`
	Payload     any       `json:"payload"`
}

type placedPayload struct {
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`
	TotalPrice   string `json:"totalPrice"`
}

type statusChangedPayload struct {
	CustomerID string `json:"customerId"`
	From       string `json:"from"`
	To         string `json:"to"`
	ChangedBy  string `json:"changedBy"`
}

type partnerAssignedPayload struct {
	PartnerID         string  `json:"partnerId"`
	PreviousPartnerID *string `json:"previousPartnerId"`
}

// NewMessage maps a domain event to its Message. Unknown event types fail.
func NewMessage(event kernel.DomainEvent) (Message, error) {
	msg := Message{
		ID:          event.EventID().String(),
		Name:        event.EventName(),
		AggregateID: event.AggregateID().String(),
		OccurredAt:  event.OccurredAt().UTC(),
	}

	switch e := event.(type) {
	case order.PlacedEvent:
		msg.Payload = placedPayload{
			CustomerID:   e.CustomerID.String(),
			RestaurantID: e.RestaurantID.String(),
			TotalPrice:   e.TotalPrice.String(),
		}
	case order.StatusChangedEvent:
		msg.Payload = statusChangedPayload{
			CustomerID: e.CustomerID.String(),
			From:       e.From.String(),
			To:         e.To.String(),
			ChangedBy:  e.ChangedBy.String(),
		}
	case order.DeliveryPartnerAssignedEvent:
		p := partnerAssignedPayload{PartnerID: e.PartnerID.String()}
		if e.PreviousPartnerID != nil {
			prev := e.PreviousPartnerID.String()
			p.PreviousPartnerID = &prev
		}
		msg.Payload = p
	default:
		return Message{}, fmt.Errorf("unsupported domain event %T (%s)", event, event.EventName())
	}
	return msg, nil
}

// encode returns the message key and JSON body of event.
func encode(event kernel.DomainEvent) ([]byte, []byte, error) {
	msg, err := NewMessage(event)
	if err != nil {
		return nil, nil, err
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, err
	}
	return []byte(msg.AggregateID), body, nil
}
