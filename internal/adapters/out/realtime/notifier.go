// Package realtime pushes user-addressed events to open client connections.
// Events are JSON Envelopes published on the hub topic named after the user
// id. HubNotifier serves a single instance; PgNotifier together with Bridge
// fans events out across instances through PostgreSQL LISTEN/NOTIFY.
package realtime

import (
	"context"
	"encoding/json"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/pubsub"
)

// Envelope is what a client receives on its channel.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newEnvelope(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: eventType, Payload: raw})
}

// HubNotifier implements ports.Notifier on a local hub.
type HubNotifier struct {
	hub *pubsub.Hub
}

func NewHubNotifier(hub *pubsub.Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) Notify(_ context.Context, userID kernel.UUID, eventType string, payload any) error {
	msg, err := newEnvelope(eventType, payload)
	if err != nil {
		return err
	}
	n.hub.Publish(userID.String(), msg)
	return nil
}
