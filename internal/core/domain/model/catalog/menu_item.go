package catalog

import "foodorder/internal/core/domain/model/kernel"

// MenuItem is a dish offered by one restaurant at the current price.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
	isAvailable  bool
	ratings      float64
}

// RestoreMenuItem rebuilds a menu item from storage.
func RestoreMenuItem(id, restaurantID kernel.UUID, name string, price kernel.Money, isAvailable bool, ratings float64) *MenuItem {
	return &MenuItem{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		isAvailable:  isAvailable,
		ratings:      ratings,
	}
}

func (m *MenuItem) ID() kernel.UUID           { return m.id }
func (m *MenuItem) RestaurantID() kernel.UUID { return m.restaurantID }
func (m *MenuItem) Name() string              { return m.name }
func (m *MenuItem) Price() kernel.Money       { return m.price }
func (m *MenuItem) IsAvailable() bool         { return m.isAvailable }
func (m *MenuItem) Ratings() float64          { return m.ratings }

// BelongsTo reports whether the item is on restaurantID's menu.
func (m *MenuItem) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}
