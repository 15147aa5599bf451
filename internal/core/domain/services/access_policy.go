package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Action is an operation subject to authorization.
type Action string

const (
	ActionPlaceOrder            Action = "place order"
	ActionChangeOrderStatus     Action = "change order status"
	ActionAssignDeliveryPartner Action = "assign delivery partner"
	ActionListMyOrders          Action = "list my orders"
	ActionListRestaurantOrders  Action = "list restaurant orders"
	ActionListAllOrders         Action = "list all orders"
	ActionPushLocation          Action = "push delivery location"
	ActionReadLocation          Action = "read delivery location"
	ActionListActiveDeliveries  Action = "list active deliveries"
	ActionAddReview             Action = "add review"
	ActionEditReview            Action = "edit review"
	ActionDeleteReview          Action = "delete review"
	ActionModerateReview        Action = "moderate review"
	ActionListReviews           Action = "list reviews"
)

// Resource carries the ownership facts of the entity an action touches. Facts
// that do not apply to the action stay nil.
type Resource struct {
	OrderCustomerID   *kernel.UUID
	RestaurantOwnerID *kernel.UUID
	AssignedPartnerID *kernel.UUID
	ReviewAuthorID    *kernel.UUID
}

// Ownership is a predicate over the actor and the resource.
type Ownership func(actor kernel.Actor, res Resource) bool

// Anyone holds for every actor of the rule's role.
func Anyone(kernel.Actor, Resource) bool { return true }

// OwnsOrder holds when the actor placed the order.
func OwnsOrder(actor kernel.Actor, res Resource) bool { return matches(actor, res.OrderCustomerID) }

// OwnsRestaurant holds when the actor owns the restaurant.
func OwnsRestaurant(actor kernel.Actor, res Resource) bool {
	return matches(actor, res.RestaurantOwnerID)
}

// IsAssignedPartner holds when the actor is the partner assigned to the order.
func IsAssignedPartner(actor kernel.Actor, res Resource) bool {
	return matches(actor, res.AssignedPartnerID)
}

// WroteReview holds when the actor is the review's author.
func WroteReview(actor kernel.Actor, res Resource) bool { return matches(actor, res.ReviewAuthorID) }

func matches(actor kernel.Actor, id *kernel.UUID) bool {
	return id != nil && id.IsEqual(actor.ID())
}

// Rule allows Role to perform Action when Ownership holds.
type Rule struct {
	Role      kernel.Role
	Action    Action
	Ownership Ownership
}

// AccessPolicy is a deny-by-default rule table.
type AccessPolicy struct {
	rules map[Action][]Rule
}

// NewAccessPolicy builds a policy from rules.
func NewAccessPolicy(rules []Rule) AccessPolicy {
	byAction := make(map[Action][]Rule, len(rules))
	for _, r := range rules {
		byAction[r.Action] = append(byAction[r.Action], r)
	}
	return AccessPolicy{rules: byAction}
}

// DefaultRules is the authorization table of the fulfillment core. Vendors
// never appear for ActionReadLocation and admin has no status transitions.
func DefaultRules() []Rule {
	return []Rule{
		{kernel.RoleCustomer, ActionPlaceOrder, Anyone},

		{kernel.RoleVendor, ActionChangeOrderStatus, OwnsRestaurant},
		{kernel.RoleDelivery, ActionChangeOrderStatus, IsAssignedPartner},
		{kernel.RoleCustomer, ActionChangeOrderStatus, OwnsOrder},

		{kernel.RoleVendor, ActionAssignDeliveryPartner, OwnsRestaurant},
		{kernel.RoleAdmin, ActionAssignDeliveryPartner, Anyone},

		{kernel.RoleCustomer, ActionListMyOrders, Anyone},
		{kernel.RoleVendor, ActionListRestaurantOrders, OwnsRestaurant},
		{kernel.RoleAdmin, ActionListAllOrders, Anyone},

		{kernel.RoleDelivery, ActionPushLocation, IsAssignedPartner},
		{kernel.RoleCustomer, ActionReadLocation, OwnsOrder},
		{kernel.RoleDelivery, ActionReadLocation, IsAssignedPartner},
		{kernel.RoleDelivery, ActionListActiveDeliveries, Anyone},

		{kernel.RoleCustomer, ActionAddReview, Anyone},
		{kernel.RoleCustomer, ActionEditReview, WroteReview},
		{kernel.RoleCustomer, ActionDeleteReview, WroteReview},
		{kernel.RoleAdmin, ActionDeleteReview, Anyone},
		{kernel.RoleAdmin, ActionModerateReview, Anyone},

		{kernel.RoleCustomer, ActionListReviews, Anyone},
		{kernel.RoleVendor, ActionListReviews, Anyone},
		{kernel.RoleDelivery, ActionListReviews, Anyone},
		{kernel.RoleAdmin, ActionListReviews, Anyone},
	}
}

// NewDefaultAccessPolicy returns the policy built from DefaultRules.
func NewDefaultAccessPolicy() AccessPolicy {
	return NewAccessPolicy(DefaultRules())
}

// Authorize returns nil when some rule for action admits actor on res, and an
// AccessDeniedError otherwise.
func (p AccessPolicy) Authorize(actor kernel.Actor, action Action, res Resource) error {
	for _, r := range p.rules[action] {
		if r.Role == actor.Role() && r.Ownership(actor, res) {
			return nil
		}
	}
	return errs.NewAccessDeniedErrorWithCause(string(action), fmt.Errorf("not permitted for %s", actor.Role()))
}

// RoleMayEver reports whether any rule for action names role, ignoring
// ownership. Use cases check it before loading data so that a wrong role is
// rejected without touching storage.
func (p AccessPolicy) RoleMayEver(role kernel.Role, action Action) bool {
	for _, r := range p.rules[action] {
		if r.Role == role {
			return true
		}
	}
	return false
}

// AuthorizeRole fails with AccessDeniedError when no rule for action names the
// actor's role.
func (p AccessPolicy) AuthorizeRole(actor kernel.Actor, action Action) error {
	if !p.RoleMayEver(actor.Role(), action) {
		return errs.NewAccessDeniedErrorWithCause(string(action), fmt.Errorf("not permitted for %s", actor.Role()))
	}
	return nil
}
