package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery lists the orders of one restaurant for its owner.
type GetRestaurantOrdersQuery struct {
	actor        kernel.Actor
	restaurantID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewGetRestaurantOrdersQuery(actor kernel.Actor, restaurantID kernel.UUID) (GetRestaurantOrdersQuery, error) {
	if err := errors.Join(actor.Validate(), restaurantID.Validate()); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}
	return GetRestaurantOrdersQuery{
		actor:        actor,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

func (q GetRestaurantOrdersQuery) Actor() kernel.Actor       { return q.actor }
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID { return q.restaurantID }
