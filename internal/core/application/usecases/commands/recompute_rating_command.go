package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/guard"
)

var ErrRecomputeRatingCommandIsNotConstructed = errors.New(
	"RecomputeRatingCommand must be created via NewRecomputeRatingCommand constructor",
)

// RecomputeRatingCommand asks to rewrite one target's rating from its reviews.
type RecomputeRatingCommand struct {
	target review.Target
	guard  guard.ConstructorGuard
}

// NewRecomputeRatingCommand creates the command.
func NewRecomputeRatingCommand(target review.Target) (RecomputeRatingCommand, error) {
	if err := target.Validate(); err != nil {
		return RecomputeRatingCommand{}, err
	}
	return RecomputeRatingCommand{target: target, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputeRatingCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeRatingCommandIsNotConstructed)
}

func (c RecomputeRatingCommand) Target() review.Target { return c.target }
