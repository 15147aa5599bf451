package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery lists the unfinished orders assigned to the acting
// delivery partner.
type GetActiveDeliveriesQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetActiveDeliveriesQuery(actor kernel.Actor) (GetActiveDeliveriesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetActiveDeliveriesQuery{}, err
	}
	return GetActiveDeliveriesQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

func (q GetActiveDeliveriesQuery) Actor() kernel.Actor { return q.actor }

// ActiveDelivery is an assigned order with its last known location, nil
// until the first ping.
type ActiveDelivery struct {
	Order    OrderView
	Location *LocationView
}
