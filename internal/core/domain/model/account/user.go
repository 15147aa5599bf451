package account

import "foodorder/internal/core/domain/model/kernel"

// User is a registered user and their role.
type User struct {
	id   kernel.UUID
	name string
	role kernel.Role
}

// RestoreUser rebuilds a user from storage.
func RestoreUser(id kernel.UUID, name string, role kernel.Role) *User {
	return &User{id: id, name: name, role: role}
}

func (u *User) ID() kernel.UUID   { return u.id }
func (u *User) Name() string      { return u.name }
func (u *User) Role() kernel.Role { return u.role }

// IsDeliveryPartner reports whether the user may be assigned to orders.
func (u *User) IsDeliveryPartner() bool {
	return u.role == kernel.RoleDelivery
}
