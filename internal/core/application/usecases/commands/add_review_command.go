package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/guard"
)

var ErrAddReviewCommandIsNotConstructed = errors.New(
	"AddReviewCommand must be created via NewAddReviewCommand constructor",
)

// AddReviewCommand is a customer's new review of a restaurant or a menu item.
type AddReviewCommand struct { //nolint:recvcheck
	actor   kernel.Actor
	target  review.Target
	rating  review.Rating
	comment string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand validates the review. Exactly one of restaurantID and
// menuItemID must be given.
func NewAddReviewCommand(actor kernel.Actor, restaurantID, menuItemID *kernel.UUID, rating int, comment string) (AddReviewCommand, error) {
	target, targetErr := review.NewTarget(restaurantID, menuItemID)
	r, ratingErr := review.NewRating(rating)
	if err := errors.Join(actor.Validate(), targetErr, ratingErr); err != nil {
		return AddReviewCommand{}, err
	}
	return AddReviewCommand{
		actor:   actor,
		target:  target,
		rating:  r,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

func (c AddReviewCommand) Actor() kernel.Actor   { return c.actor }
func (c AddReviewCommand) Target() review.Target { return c.target }
func (c AddReviewCommand) Rating() review.Rating { return c.rating }
func (c AddReviewCommand) Comment() string       { return c.comment }
