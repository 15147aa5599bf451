package account

import "foodorder/internal/core/domain/model/kernel"

// Address is a delivery address saved by a user.
type Address struct {
	id     kernel.UUID
	userID kernel.UUID
	label  string
	point  *kernel.GeoPoint
}

// RestoreAddress rebuilds an address from storage. point is nil when the
// address was saved without coordinates.
func RestoreAddress(id, userID kernel.UUID, label string, point *kernel.GeoPoint) *Address {
	return &Address{id: id, userID: userID, label: label, point: point}
}

func (a *Address) ID() kernel.UUID         { return a.id }
func (a *Address) UserID() kernel.UUID     { return a.userID }
func (a *Address) Label() string           { return a.label }
func (a *Address) Point() *kernel.GeoPoint { return a.point }

// BelongsTo reports whether the address is userID's.
func (a *Address) BelongsTo(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}
