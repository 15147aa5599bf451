package reviewrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReviewRepository implements ports.ReviewRepository using GORM. The
// connection must be opened with TranslateError so that unique violations
// surface as gorm.ErrDuplicatedKey.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Add(ctx context.Context, rv *review.Review) error {
	if err := rv.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rv)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("review", rv.Target().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	if err := rv.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("id = ?", rv.ID().Google()).
		Updates(map[string]any{
			"rating":     rv.Rating().Int(),
			"comment":    rv.Comment(),
			"updated_at": rv.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", rv.ID().String())
	}
	return nil
}

func (r *GormReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ReviewDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", id.String())
	}
	return nil
}

func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormReviewRepository) ExistsForCustomerAndTarget(ctx context.Context, customerID kernel.UUID, target review.Target) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("customer_id = ?", customerID.Google()).
		Where(targetColumn(target)+" = ?", target.ID().Google()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormReviewRepository) RatingsOf(ctx context.Context, target review.Target) ([]review.Rating, error) {
	var values []int
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where(targetColumn(target)+" = ?", target.ID().Google()).
		Pluck("rating", &values).Error
	if err != nil {
		return nil, err
	}

	ratings := make([]review.Rating, 0, len(values))
	for _, v := range values {
		rating, ratingErr := review.NewRating(v)
		if ratingErr != nil {
			return nil, ratingErr
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

// ReviewedTargets lists restaurants and menu items that carry a rating or are
// referenced by a review. A target with a stale rating and no reviews left is
// included so that reconciliation resets it to 0.
func (r *GormReviewRepository) ReviewedTargets(ctx context.Context) ([]review.Target, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT ?::int, id FROM restaurants
		WHERE ratings <> 0 OR EXISTS (SELECT 1 FROM reviews WHERE reviews.restaurant_id = restaurants.id)
		UNION ALL
		SELECT ?::int, id FROM menu_items
		WHERE ratings <> 0 OR EXISTS (SELECT 1 FROM reviews WHERE reviews.menu_item_id = menu_items.id)
	`, int(review.TargetTypeRestaurant), int(review.TargetTypeMenuItem)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make([]review.Target, 0)
	for rows.Next() {
		var kind int
		var raw uuid.UUID
		if err = rows.Scan(&kind, &raw); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromGoogle(raw)
		if idErr != nil {
			return nil, idErr
		}

		var target review.Target
		if review.TargetType(kind) == review.TargetTypeRestaurant {
			target, err = review.NewRestaurantTarget(id)
		} else {
			target, err = review.NewMenuItemTarget(id)
		}
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}
