package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/tracking"
)

// EventPublisher delivers committed domain events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}

// Notifier pushes a realtime event to every connection a user has open.
// Delivery is best-effort.
type Notifier interface {
	Notify(ctx context.Context, userID kernel.UUID, eventType string, payload any) error
}

// IdempotencyStore remembers which order a client-supplied key produced.
type IdempotencyStore interface {
	// Reserve claims key within scope. When the key already produced an
	// order, that order's id is returned with done set. When another request
	// holds the key it fails with errs.ObjectAlreadyExistsError.
	Reserve(ctx context.Context, scope, key string) (orderID kernel.UUID, done bool, err error)

	// Complete binds the reserved key to orderID.
	Complete(ctx context.Context, scope, key string, orderID kernel.UUID) error

	// Release frees a reservation whose request failed.
	Release(ctx context.Context, scope, key string) error
}

// TrackingArchive stores the full location history of a finished delivery.
type TrackingArchive interface {
	// Store writes entries and returns where they were written.
	Store(ctx context.Context, orderID kernel.UUID, entries []tracking.Entry) (string, error)
}
