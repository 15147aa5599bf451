package commands

import (
	"context"

	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/services"
)

type ratingUoW interface {
	ReviewRepoFactory
	RatingRepoFactory
}

// recomputeRating writes the mean of the target's current reviews to the
// target. The caller holds the target lock taken by RatingRepository.LockTarget
// in the same transaction, so concurrent recomputations of one target run one
// after the other and each reads the reviews committed before it.
func recomputeRating(ctx context.Context, uow ratingUoW, target review.Target) (float64, error) {
	ratings, err := uow.ReviewRepository().RatingsOf(ctx, target)
	if err != nil {
		return 0, err
	}

	mean := services.MeanRating(ratings)
	if err = uow.RatingRepository().SetRating(ctx, target, mean); err != nil {
		return 0, err
	}
	return mean, nil
}
