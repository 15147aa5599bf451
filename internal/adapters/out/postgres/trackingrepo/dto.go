// Package trackingrepo persists delivery tracking: one delivery_trackings row
// per order and its append-only location_updates.
package trackingrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingDTO is the head row of an order's tracking. It is the row locked to
// serialize appends.
type TrackingDTO struct {
	OrderID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryPartnerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt         time.Time  `gorm:"not null;autoCreateTime:false"`
	ArchivedAt        *time.Time `gorm:"index"`
}

func (TrackingDTO) TableName() string {
	return "delivery_trackings"
}

// LocationUpdateDTO is one ping. The serial id gives the append order.
type LocationUpdateDTO struct {
	ID         uint64    `gorm:"primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_location_updates_order_id"`
	Lat        float64   `gorm:"not null"`
	Long       float64   `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null"`
}

func (LocationUpdateDTO) TableName() string {
	return "location_updates"
}

func entryFromDTO(dto LocationUpdateDTO) (tracking.Entry, error) {
	point, err := kernel.NewGeoPoint(dto.Lat, dto.Long)
	if err != nil {
		return tracking.Entry{}, err
	}
	return tracking.NewEntry(point, dto.RecordedAt.UTC()), nil
}

func entryToDTO(orderID uuid.UUID, e tracking.Entry) LocationUpdateDTO {
	return LocationUpdateDTO{
		OrderID:    orderID,
		Lat:        e.Point().Lat(),
		Long:       e.Point().Long(),
		RecordedAt: e.RecordedAt(),
	}
}

func toDomain(dto TrackingDTO, latest *LocationUpdateDTO) (*tracking.Tracking, error) {
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	partnerID, err := kernel.UUIDFromGoogle(dto.DeliveryPartnerID)
	if err != nil {
		return nil, err
	}

	var entry *tracking.Entry
	if latest != nil {
		e, entryErr := entryFromDTO(*latest)
		if entryErr != nil {
			return nil, entryErr
		}
		entry = &e
	}

	var archivedAt *time.Time
	if dto.ArchivedAt != nil {
		at := dto.ArchivedAt.UTC()
		archivedAt = &at
	}

	return tracking.RestoreTracking(orderID, partnerID, entry, dto.CreatedAt.UTC(), archivedAt), nil
}
