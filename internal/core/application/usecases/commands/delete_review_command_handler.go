package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// DeleteReviewCommandHandler removes a review and recomputes the target's
// rating, which drops to 0 when the last review goes.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteReviewCommandHandler creates the handler.
func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory, policy services.AccessPolicy) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle deletes the review.
func (h DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.AuthorizeRole(cmd.Actor(), cmd.Action()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviews := uow.ReviewRepository()
	r, err := reviews.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	authorID := r.CustomerID()
	if err = h.policy.Authorize(cmd.Actor(), cmd.Action(), services.Resource{ReviewAuthorID: &authorID}); err != nil {
		return err
	}

	if err = uow.RatingRepository().LockTarget(ctx, r.Target()); err != nil {
		return err
	}

	if err = reviews.Delete(ctx, r.ID()); err != nil {
		return err
	}

	if _, err = recomputeRating(ctx, uow, r.Target()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
