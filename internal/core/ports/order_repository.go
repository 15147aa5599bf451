// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, the unit of work and the outbound channels
// (domain events, realtime notifications, idempotency keys, archive storage).
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, partner and payment changes of an existing
	// order. The write is conditional on the version the aggregate was read
	// at; when another writer got there first it fails with
	// errs.VersionIsInvalidError and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForShare is Get under a share lock held until the unit of work
	// ends, so the order cannot change while the caller relies on it.
	GetForShare(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsForCustomerAndRestaurant reports whether the customer ever
	// placed an order against the restaurant.
	ExistsForCustomerAndRestaurant(ctx context.Context, customerID, restaurantID kernel.UUID) (bool, error)
}
