package commands

import (
	"context"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// AddReviewCommandHandler creates a review and recomputes the target's rating
// before returning.
//
// Business rules:
//   - only customers review
//   - a restaurant review needs a prior order of the customer at that restaurant
//   - one review per customer and target; a second one is a conflict
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	policy     services.AccessPolicy
}

// NewAddReviewCommandHandler creates the handler.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory, policy services.AccessPolicy) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle stores the review and returns it.
func (h AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionAddReview, services.Resource{}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target := cmd.Target()
	customerID := cmd.Actor().ID()

	// also proves the target exists
	if err := uow.RatingRepository().LockTarget(ctx, target); err != nil {
		return nil, err
	}

	if target.IsRestaurant() {
		ordered, err := uow.OrderRepository().ExistsForCustomerAndRestaurant(ctx, customerID, target.ID())
		if err != nil {
			return nil, err
		}
		if !ordered {
			return nil, errs.NewAccessDeniedErrorWithCause(string(services.ActionAddReview),
				fmt.Errorf("no order at restaurant %s", target.ID()))
		}
	}

	reviews := uow.ReviewRepository()
	exists, err := reviews.ExistsForCustomerAndTarget(ctx, customerID, target)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsError("review", target.String())
	}

	r, err := review.NewReview(kernel.NewUUID(), customerID, target, cmd.Rating(), cmd.Comment(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = reviews.Add(ctx, r); err != nil {
		return nil, err
	}

	if _, err = recomputeRating(ctx, uow, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
