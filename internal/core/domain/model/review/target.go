package review

import (
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// TargetType tells whether a review rates a restaurant or a menu item.
type TargetType int

const (
	TargetTypeUnknown TargetType = iota
	TargetTypeRestaurant
	TargetTypeMenuItem
)

func (t TargetType) String() string {
	switch t {
	case TargetTypeRestaurant:
		return "restaurant"
	case TargetTypeMenuItem:
		return "menuItem"
	default:
		return "unknown"
	}
}

// ParseTargetType converts "restaurant" or "menuItem".
func ParseTargetType(s string) (TargetType, error) {
	switch {
	case strings.EqualFold(s, TargetTypeRestaurant.String()):
		return TargetTypeRestaurant, nil
	case strings.EqualFold(s, TargetTypeMenuItem.String()):
		return TargetTypeMenuItem, nil
	}
	return TargetTypeUnknown, errs.NewValueIsInvalidErrorWithCause("targetType", fmt.Errorf("%q is not a review target", s))
}

// Target is the single entity a review refers to.
type Target struct {
	kind TargetType
	id   kernel.UUID
}

// NewRestaurantTarget targets a restaurant.
func NewRestaurantTarget(id kernel.UUID) (Target, error) {
	if err := id.Validate(); err != nil {
		return Target{}, errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	return Target{kind: TargetTypeRestaurant, id: id}, nil
}

// NewMenuItemTarget targets a menu item.
func NewMenuItemTarget(id kernel.UUID) (Target, error) {
	if err := id.Validate(); err != nil {
		return Target{}, errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
	}
	return Target{kind: TargetTypeMenuItem, id: id}, nil
}

// NewTarget builds a Target from the two optional references of a request.
// Exactly one of them must be set.
func NewTarget(restaurantID, menuItemID *kernel.UUID) (Target, error) {
	switch {
	case restaurantID != nil && menuItemID != nil:
		return Target{}, errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("a review refers to a restaurant or a menu item, not both"))
	case restaurantID != nil:
		return NewRestaurantTarget(*restaurantID)
	case menuItemID != nil:
		return NewMenuItemTarget(*menuItemID)
	default:
		return Target{}, errs.NewValueIsRequiredError("restaurantId or menuItemId")
	}
}

func (t Target) Type() TargetType { return t.kind }

func (t Target) ID() kernel.UUID { return t.id }

func (t Target) IsRestaurant() bool { return t.kind == TargetTypeRestaurant }

func (t Target) IsMenuItem() bool { return t.kind == TargetTypeMenuItem }

// IsEqual compares type and id.
func (t Target) IsEqual(other Target) bool {
	return t.kind == other.kind && t.id.IsEqual(other.id)
}

func (t Target) String() string {
	return t.kind.String() + ":" + t.id.String()
}

// Validate fails for a zero Target.
func (t Target) Validate() error {
	if t.kind == TargetTypeUnknown {
		return errs.NewValueIsRequiredError("target")
	}
	return t.id.Validate()
}
