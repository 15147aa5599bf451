package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery lists the orders placed by the acting customer.
type GetMyOrdersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetMyOrdersQuery(actor kernel.Actor) (GetMyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}
	return GetMyOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

func (q GetMyOrdersQuery) Actor() kernel.Actor { return q.actor }
