package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for delivery tracking.
type TrackingRepository interface {
	// GetOrCreateForUpdate returns the tracking of orderID, creating an empty
	// one for partnerID on the first call, and locks it until the
	// transaction ends so that appends for one order are serialized.
	GetOrCreateForUpdate(ctx context.Context, orderID, partnerID kernel.UUID, now time.Time) (*tracking.Tracking, error)

	// GetForUpdate returns the existing tracking of orderID and locks it.
	// Returns errs.ObjectNotFoundError when no ping was ever received.
	GetForUpdate(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error)

	// Save writes the entries appended since load and the archive marker.
	Save(ctx context.Context, aggregate *tracking.Tracking) error

	// History returns every entry of orderID in append order.
	History(ctx context.Context, orderID kernel.UUID) ([]tracking.Entry, error)

	// ListArchivable returns up to limit order ids whose order is terminal
	// and whose tracking has not been archived yet.
	ListArchivable(ctx context.Context, limit int) ([]kernel.UUID, error)
}
