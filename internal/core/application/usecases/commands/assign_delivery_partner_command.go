package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAssignDeliveryPartnerCommandIsNotConstructed = errors.New(
	"AssignDeliveryPartnerCommand must be created via NewAssignDeliveryPartnerCommand constructor",
)

// AssignDeliveryPartnerCommand binds a delivery partner to an order.
type AssignDeliveryPartnerCommand struct { //nolint:recvcheck
	actor     kernel.Actor
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryPartnerCommand validates the identifiers.
func NewAssignDeliveryPartnerCommand(actor kernel.Actor, orderID, partnerID kernel.UUID) (AssignDeliveryPartnerCommand, error) {
	var partnerErr error
	if err := partnerID.Validate(); err != nil {
		partnerErr = errs.NewValueIsRequiredErrorWithCause("deliveryPartnerId", err)
	}
	if err := errors.Join(actor.Validate(), orderID.Validate(), partnerErr); err != nil {
		return AssignDeliveryPartnerCommand{}, err
	}
	return AssignDeliveryPartnerCommand{
		actor:     actor,
		orderID:   orderID,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPartnerCommandIsNotConstructed)
}

func (c AssignDeliveryPartnerCommand) Actor() kernel.Actor    { return c.actor }
func (c AssignDeliveryPartnerCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AssignDeliveryPartnerCommand) PartnerID() kernel.UUID { return c.partnerID }
