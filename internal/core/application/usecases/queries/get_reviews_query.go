package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/guard"
)

var ErrGetReviewsQueryIsNotConstructed = errors.New(
	"GetReviewsQuery must be created via NewGetReviewsQuery constructor",
)

// GetReviewsQuery lists the reviews of a restaurant or of a menu item.
type GetReviewsQuery struct {
	actor  kernel.Actor
	target review.Target
	guard  guard.ConstructorGuard
}

// NewGetReviewsQuery accepts "restaurant" or "menuItem" as targetType.
func NewGetReviewsQuery(actor kernel.Actor, targetType string, targetID kernel.UUID) (GetReviewsQuery, error) {
	kind, err := review.ParseTargetType(targetType)
	if err != nil {
		return GetReviewsQuery{}, errors.Join(actor.Validate(), err)
	}

	var target review.Target
	if kind == review.TargetTypeRestaurant {
		target, err = review.NewRestaurantTarget(targetID)
	} else {
		target, err = review.NewMenuItemTarget(targetID)
	}
	if err = errors.Join(actor.Validate(), err); err != nil {
		return GetReviewsQuery{}, err
	}
	return GetReviewsQuery{actor: actor, target: target, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsQueryIsNotConstructed)
}

func (q GetReviewsQuery) Actor() kernel.Actor    { return q.actor }
func (q GetReviewsQuery) Target() review.Target { return q.target }

// ReviewView is a review as listed under its target.
type ReviewView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GetReviewsQueryResponse carries the reviews and the stored mean rating of
// the target.
type GetReviewsQueryResponse struct {
	Target  review.Target
	Ratings float64
	Reviews []ReviewView
}
