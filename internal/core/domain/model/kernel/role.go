package kernel

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Role is the kind of user acting on the system. It decides which transitions
// and reads are permitted.
type Role int

const (
	// RoleUnknown is the zero value and never authorizes anything.
	RoleUnknown Role = iota
	RoleCustomer
	RoleVendor
	RoleDelivery
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleVendor:   "vendor",
		RoleDelivery: "delivery",
		RoleAdmin:    "admin",
	}
}

// ParseRole converts the textual role carried in tokens and storage.
func ParseRole(s string) (Role, error) {
	for r, str := range getRoleStrings() {
		if r != RoleUnknown && strings.EqualFold(str, s) {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate fails for RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the authenticated user a command or query runs on behalf of.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from an identity supplied by the auth layer.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the user id.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the user's role.
func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor has role r.
func (a Actor) Is(r Role) bool {
	return a.role == r
}

// Validate fails for a zero-value Actor.
func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}
