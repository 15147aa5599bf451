// Package accountrepo reads users and their delivery addresses from the
// shared store. Both tables are owned by the account service.
package accountrepo

import (
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the row of a user. Role holds the textual role of the tokens.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:255;not null"`
	Role string    `gorm:"size:32;not null;index"`
}

func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO is the row of an address. Coordinates are optional.
type AddressDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label  string    `gorm:"size:255"`
	Lat    *float64
	Long   *float64
}

func (AddressDTO) TableName() string {
	return "addresses"
}

// UserFromDomain is used by fixtures that seed accounts.
func UserFromDomain(u *account.User) UserDTO {
	return UserDTO{
		ID:   u.ID().Google(),
		Name: u.Name(),
		Role: u.Role().String(),
	}
}

// AddressFromDomain is used by fixtures that seed accounts.
func AddressFromDomain(a *account.Address) AddressDTO {
	dto := AddressDTO{
		ID:     a.ID().Google(),
		UserID: a.UserID().Google(),
		Label:  a.Label(),
	}
	if p := a.Point(); p != nil {
		lat, long := p.Lat(), p.Long()
		dto.Lat, dto.Long = &lat, &long
	}
	return dto
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := kernel.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return account.RestoreUser(id, dto.Name, role), nil
}

func addressToDomain(dto AddressDTO) (*account.Address, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Long != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Long)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &p
	}
	return account.RestoreAddress(id, userID, dto.Label, point), nil
}
