package catalog

import "foodorder/internal/core/domain/model/kernel"

// Restaurant is a vendor-owned restaurant.
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string
	isOpen  bool
	ratings float64
}

// RestoreRestaurant rebuilds a restaurant from storage.
func RestoreRestaurant(id, ownerID kernel.UUID, name string, isOpen bool, ratings float64) *Restaurant {
	return &Restaurant{id: id, ownerID: ownerID, name: name, isOpen: isOpen, ratings: ratings}
}

func (r *Restaurant) ID() kernel.UUID      { return r.id }
func (r *Restaurant) OwnerID() kernel.UUID { return r.ownerID }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) IsOpen() bool         { return r.isOpen }
func (r *Restaurant) Ratings() float64     { return r.ratings }

// IsOwnedBy reports whether vendorID owns the restaurant.
func (r *Restaurant) IsOwnedBy(vendorID kernel.UUID) bool {
	return r.ownerID.IsEqual(vendorID)
}
