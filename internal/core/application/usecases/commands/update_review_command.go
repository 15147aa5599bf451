package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateReviewCommandIsNotConstructed = errors.New(
	"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
)

// UpdateReviewCommand edits the rating and/or comment of a review.
type UpdateReviewCommand struct { //nolint:recvcheck
	actor    kernel.Actor
	reviewID kernel.UUID
	rating   *review.Rating
	comment  *string

	guard guard.ConstructorGuard
}

// NewUpdateReviewCommand needs at least one of rating and comment.
func NewUpdateReviewCommand(actor kernel.Actor, reviewID kernel.UUID, rating *int, comment *string) (UpdateReviewCommand, error) {
	cmd := UpdateReviewCommand{
		actor:    actor,
		reviewID: reviewID,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}

	var ratingErr error
	if rating != nil {
		r, err := review.NewRating(*rating)
		ratingErr = err
		cmd.rating = &r
	}

	var emptyErr error
	if rating == nil && comment == nil {
		emptyErr = errs.NewValueIsRequiredError("rating or comment")
	}

	if err := errors.Join(actor.Validate(), reviewID.Validate(), ratingErr, emptyErr); err != nil {
		return UpdateReviewCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

func (c UpdateReviewCommand) Actor() kernel.Actor    { return c.actor }
func (c UpdateReviewCommand) ReviewID() kernel.UUID  { return c.reviewID }
func (c UpdateReviewCommand) Rating() *review.Rating { return c.rating }
func (c UpdateReviewCommand) Comment() *string       { return c.comment }
