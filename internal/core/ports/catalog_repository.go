package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
)

// RestaurantRepository resolves restaurants by id.
type RestaurantRepository interface {
	// Get returns errs.ObjectNotFoundError when the restaurant does not exist.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)
}

// MenuItemRepository resolves menu items by id.
type MenuItemRepository interface {
	// Get returns errs.ObjectNotFoundError when the menu item does not exist.
	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)
}

// RatingRepository is the only writer of the ratings field of restaurants and
// menu items.
type RatingRepository interface {
	// LockTarget takes a row lock on the rated entity until the transaction
	// ends. Returns errs.ObjectNotFoundError when it does not exist.
	LockTarget(ctx context.Context, target review.Target) error

	// SetRating stores the recomputed mean.
	SetRating(ctx context.Context, target review.Target, value float64) error
}
