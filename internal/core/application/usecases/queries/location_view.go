package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationView is the latest known position of a delivery.
type LocationView struct {
	OrderID    kernel.UUID
	Lat        float64
	Long       float64
	RecordedAt time.Time
}

// latestLocations returns the last appended entry of every order in ids that
// has one.
func latestLocations(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[kernel.UUID]LocationView, error) {
	latest := make(map[kernel.UUID]LocationView, len(ids))
	if len(ids) == 0 {
		return latest, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (order_id)
			order_id,
			lat,
			long,
			recorded_at
		FROM location_updates
		WHERE order_id IN ?
		ORDER BY order_id, id DESC
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			raw  uuid.UUID
			view LocationView
		)
		if err = rows.Scan(&raw, &view.Lat, &view.Long, &view.RecordedAt); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromGoogle(raw); err != nil {
			return nil, err
		}
		latest[view.OrderID] = view
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return latest, nil
}
