package order

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

type transitionKey struct {
	from Status
	role kernel.Role
}

// transitions is the complete state machine: for a current status and the
// acting role it lists every status that may follow. Pairs that are absent
// have no outgoing transitions. Admin never appears.
var transitions = map[transitionKey][]Status{
	{Pending, kernel.RoleVendor}:          {Accepted},
	{Pending, kernel.RoleCustomer}:        {Cancelled},
	{Accepted, kernel.RoleVendor}:         {Preparing},
	{Accepted, kernel.RoleCustomer}:       {Cancelled},
	{Preparing, kernel.RoleVendor}:        {ReadyForPickup},
	{Preparing, kernel.RoleCustomer}:      {Cancelled},
	{ReadyForPickup, kernel.RoleDelivery}: {OutForDelivery},
	{OutForDelivery, kernel.RoleDelivery}: {Delivered},
}

// AllowedTransitions returns the statuses role may move an order to from s.
func (s Status) AllowedTransitions(role kernel.Role) []Status {
	next := transitions[transitionKey{from: s, role: role}]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether role may move an order from s to target.
func (s Status) CanTransitionTo(role kernel.Role, target Status) bool {
	for _, next := range transitions[transitionKey{from: s, role: role}] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to target by role and returns target.
//
// Returns:
//   - ValueIsInvalidError if target is not a lifecycle state
//   - AccessDeniedError if s is terminal, or the move is not in the table for role
func (s Status) TransitionTo(role kernel.Role, target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewAccessDeniedErrorWithCause(
			"change order status",
			fmt.Errorf("order is %s and cannot change any more", s),
		)
	}
	if !s.CanTransitionTo(role, target) {
		return Unknown, errs.NewAccessDeniedErrorWithCause(
			"change order status",
			fmt.Errorf("%s cannot move an order from %s to %s", role, s, target),
		)
	}
	return target, nil
}
