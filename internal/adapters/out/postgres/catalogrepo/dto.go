// Package catalogrepo reads restaurants and menu items and owns the write of
// their ratings column.
package catalogrepo

import (
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO is the row of a restaurant managed by the catalog service.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"size:255;not null"`
	IsOpen  bool      `gorm:"not null;default:true"`
	Ratings float64   `gorm:"not null;default:0"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is the row of a menu item.
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"size:255;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsAvailable  bool            `gorm:"not null;default:true"`
	Ratings      float64         `gorm:"not null;default:0"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// RestaurantFromDomain is used by fixtures that seed the catalog.
func RestaurantFromDomain(r *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      r.ID().Google(),
		OwnerID: r.OwnerID().Google(),
		Name:    r.Name(),
		IsOpen:  r.IsOpen(),
		Ratings: r.Ratings(),
	}
}

// MenuItemFromDomain is used by fixtures that seed the catalog.
func MenuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           m.ID().Google(),
		RestaurantID: m.RestaurantID().Google(),
		Name:         m.Name(),
		Price:        m.Price().Amount(),
		IsAvailable:  m.IsAvailable(),
		Ratings:      m.Ratings(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromGoogle(dto.OwnerID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreRestaurant(id, ownerID, dto.Name, dto.IsOpen, dto.Ratings), nil
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromGoogle(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMenuItem(id, restaurantID, dto.Name, price, dto.IsAvailable, dto.Ratings), nil
}
