package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/services"
)

// UpdateReviewCommandHandler lets the author edit a review and recomputes the
// target's rating.
type UpdateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateReviewCommandHandler creates the handler.
func NewUpdateReviewCommandHandler(uowFactory ReviewUoWFactory, policy services.AccessPolicy) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle applies the edit and returns the review.
func (h UpdateReviewCommandHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeRole(cmd.Actor(), services.ActionEditReview); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviews := uow.ReviewRepository()
	r, err := reviews.Get(ctx, cmd.ReviewID())
	if err != nil {
		return nil, err
	}

	authorID := r.CustomerID()
	if err = h.policy.Authorize(cmd.Actor(), services.ActionEditReview, services.Resource{ReviewAuthorID: &authorID}); err != nil {
		return nil, err
	}

	if err = uow.RatingRepository().LockTarget(ctx, r.Target()); err != nil {
		return nil, err
	}

	if err = r.Edit(cmd.Rating(), cmd.Comment(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = reviews.Update(ctx, r); err != nil {
		return nil, err
	}

	if _, err = recomputeRating(ctx, uow, r.Target()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
