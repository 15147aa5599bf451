package catalogrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRestaurantRepository implements ports.RestaurantRepository.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}
	return restaurantToDomain(dto)
}

// GormMenuItemRepository implements ports.MenuItemRepository.
type GormMenuItemRepository struct {
	db *gorm.DB
}

func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id.String())
		}
		return nil, err
	}
	return menuItemToDomain(dto)
}

// GormRatingRepository implements ports.RatingRepository on the ratings
// columns of restaurants and menu_items.
type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// LockTarget runs SELECT ... FOR UPDATE on the rated row. Outside a
// transaction the lock is released immediately.
func (r *GormRatingRepository) LockTarget(ctx context.Context, target review.Target) error {
	if err := target.Validate(); err != nil {
		return err
	}

	model, param := targetModel(target)
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(model).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", target.ID().Google()).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errs.NewObjectNotFoundError(param, target.ID().String())
	}
	return nil
}

func (r *GormRatingRepository) SetRating(ctx context.Context, target review.Target, value float64) error {
	if err := target.Validate(); err != nil {
		return err
	}

	model, param := targetModel(target)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", target.ID().Google()).
		Update("ratings", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(param, target.ID().String())
	}
	return nil
}

func targetModel(target review.Target) (any, string) {
	if target.IsRestaurant() {
		return &RestaurantDTO{}, "restaurant"
	}
	return &MenuItemDTO{}, "menuItem"
}
