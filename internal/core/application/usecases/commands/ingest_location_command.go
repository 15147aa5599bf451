package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrIngestLocationCommandIsNotConstructed = errors.New(
	"IngestLocationCommand must be created via NewIngestLocationCommand constructor",
)

// IngestLocationCommand is one position ping of a delivery partner.
type IngestLocationCommand struct { //nolint:recvcheck
	actor   kernel.Actor
	orderID kernel.UUID
	point   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewIngestLocationCommand validates the reading. Only non-finite coordinates
// are rejected.
func NewIngestLocationCommand(actor kernel.Actor, orderID kernel.UUID, lat, long float64) (IngestLocationCommand, error) {
	point, pointErr := kernel.NewGeoPoint(lat, long)
	if err := errors.Join(actor.Validate(), orderID.Validate(), pointErr); err != nil {
		return IngestLocationCommand{}, err
	}
	return IngestLocationCommand{
		actor:   actor,
		orderID: orderID,
		point:   point,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c IngestLocationCommand) Validate() error {
	return c.guard.Validate(ErrIngestLocationCommandIsNotConstructed)
}

func (c IngestLocationCommand) Actor() kernel.Actor    { return c.actor }
func (c IngestLocationCommand) OrderID() kernel.UUID   { return c.orderID }
func (c IngestLocationCommand) Point() kernel.GeoPoint { return c.point }
