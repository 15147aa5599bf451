package trackingrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/tracking"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTrackingRepository implements ports.TrackingRepository using GORM.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// GetOrCreateForUpdate inserts the head row if it is missing and locks it.
// Two first pings racing on one order both end up holding the same row, one
// after the other.
func (r *GormTrackingRepository) GetOrCreateForUpdate(
	ctx context.Context,
	orderID, partnerID kernel.UUID,
	now time.Time,
) (*tracking.Tracking, error) {
	if err := errors.Join(orderID.Validate(), partnerID.Validate()); err != nil {
		return nil, err
	}

	head := TrackingDTO{
		OrderID:           orderID.Google(),
		DeliveryPartnerID: partnerID.Google(),
		CreatedAt:         now,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&head).Error; err != nil {
		return nil, err
	}

	return r.GetForUpdate(ctx, orderID)
}

// GetForUpdate locks and returns the tracking with its latest entry.
func (r *GormTrackingRepository) GetForUpdate(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var head TrackingDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&head, "order_id = ?", orderID.Google()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", orderID.String())
		}
		return nil, err
	}

	var latest []LocationUpdateDTO
	if err = r.db.WithContext(ctx).
		Where("order_id = ?", head.OrderID).
		Order("id DESC").
		Limit(1).
		Find(&latest).Error; err != nil {
		return nil, err
	}

	if len(latest) == 0 {
		return toDomain(head, nil)
	}
	return toDomain(head, &latest[0])
}

// Save upserts the head row and inserts the entries appended since load.
func (r *GormTrackingRepository) Save(ctx context.Context, aggregate *tracking.Tracking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	head := TrackingDTO{
		OrderID:           aggregate.OrderID().Google(),
		DeliveryPartnerID: aggregate.PartnerID().Google(),
		CreatedAt:         aggregate.CreatedAt(),
		ArchivedAt:        aggregate.ArchivedAt(),
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"delivery_partner_id", "archived_at"}),
		}).
		Create(&head).Error; err != nil {
		return err
	}

	appended := aggregate.Appended()
	if len(appended) > 0 {
		rows := make([]LocationUpdateDTO, 0, len(appended))
		for _, e := range appended {
			rows = append(rows, entryToDTO(head.OrderID, e))
		}
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	aggregate.MarkPersisted()
	return nil
}

// History returns every entry of the order in append order.
func (r *GormTrackingRepository) History(ctx context.Context, orderID kernel.UUID) ([]tracking.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var rows []LocationUpdateDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Google()).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]tracking.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := entryFromDTO(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ListArchivable returns trackings of delivered or cancelled orders that were
// not archived yet, oldest first.
func (r *GormTrackingRepository) ListArchivable(ctx context.Context, limit int) ([]kernel.UUID, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT t.order_id
		FROM delivery_trackings t
		JOIN orders o ON o.id = t.order_id
		WHERE t.archived_at IS NULL
		  AND o.status IN (?, ?)
		ORDER BY t.created_at
		LIMIT ?
	`, int(order.Delivered), int(order.Cancelled), limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}
		id, idErr := kernel.UUIDFromGoogle(raw)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
