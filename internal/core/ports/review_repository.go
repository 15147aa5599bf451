package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review. A second review of the same customer for
	// the same target fails with errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, r *review.Review) error

	// Update persists rating and comment changes.
	Update(ctx context.Context, r *review.Review) error

	// Delete removes the review.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns errs.ObjectNotFoundError when the review does not exist.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// ExistsForCustomerAndTarget reports whether customerID already reviewed target.
	ExistsForCustomerAndTarget(ctx context.Context, customerID kernel.UUID, target review.Target) (bool, error)

	// RatingsOf returns the ratings of every review currently referencing target.
	RatingsOf(ctx context.Context, target review.Target) ([]review.Rating, error)

	// ReviewedTargets returns every target that has ratings stored on it or
	// reviews referencing it.
	ReviewedTargets(ctx context.Context) ([]review.Target, error)
}
