package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetLatestLocationQueryIsNotConstructed = errors.New(
	"GetLatestLocationQuery must be created via NewGetLatestLocationQuery constructor",
)

// GetLatestLocationQuery reads where the delivery of an order was last seen.
type GetLatestLocationQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetLatestLocationQuery(actor kernel.Actor, orderID kernel.UUID) (GetLatestLocationQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetLatestLocationQuery{}, err
	}
	return GetLatestLocationQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestLocationQueryIsNotConstructed)
}

func (q GetLatestLocationQuery) Actor() kernel.Actor  { return q.actor }
func (q GetLatestLocationQuery) OrderID() kernel.UUID { return q.orderID }
