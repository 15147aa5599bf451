package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteReviewCommandIsNotConstructed = errors.New(
	"DeleteReviewCommand must be created via NewDeleteReviewCommand or NewModerateReviewCommand constructor",
)

// DeleteReviewCommand removes a review, either by its author or an admin
// (delete) or as an admin moderation decision.
type DeleteReviewCommand struct { //nolint:recvcheck
	actor    kernel.Actor
	reviewID kernel.UUID
	action   services.Action

	guard guard.ConstructorGuard
}

// NewDeleteReviewCommand is the author's or an admin's deletion.
func NewDeleteReviewCommand(actor kernel.Actor, reviewID kernel.UUID) (DeleteReviewCommand, error) {
	return newDeleteReviewCommand(actor, reviewID, services.ActionDeleteReview)
}

// NewModerateReviewCommand is an admin taking a review down.
func NewModerateReviewCommand(actor kernel.Actor, reviewID kernel.UUID) (DeleteReviewCommand, error) {
	return newDeleteReviewCommand(actor, reviewID, services.ActionModerateReview)
}

func newDeleteReviewCommand(actor kernel.Actor, reviewID kernel.UUID, action services.Action) (DeleteReviewCommand, error) {
	if err := errors.Join(actor.Validate(), reviewID.Validate()); err != nil {
		return DeleteReviewCommand{}, err
	}
	return DeleteReviewCommand{
		actor:    actor,
		reviewID: reviewID,
		action:   action,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

func (c DeleteReviewCommand) Actor() kernel.Actor     { return c.actor }
func (c DeleteReviewCommand) ReviewID() kernel.UUID   { return c.reviewID }
func (c DeleteReviewCommand) Action() services.Action { return c.action }
