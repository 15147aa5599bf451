// Package reviewrepo persists reviews. One customer reviews a target at most
// once, enforced by two unique indexes; NULL target columns never collide.
package reviewrepo

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO is the row of a review. Exactly one of RestaurantID and
// MenuItemID is set.
type ReviewDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_customer_restaurant;uniqueIndex:idx_reviews_customer_menu_item"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_reviews_customer_restaurant;check:chk_reviews_single_target,(restaurant_id IS NULL) <> (menu_item_id IS NULL)"`
	MenuItemID   *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_reviews_customer_menu_item"`
	Rating       int        `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment      string     `gorm:"type:text"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime:false"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

// targetColumn is the reviews column that references target.
func targetColumn(target review.Target) string {
	if target.IsRestaurant() {
		return "restaurant_id"
	}
	return "menu_item_id"
}

func fromDomain(r *review.Review) ReviewDTO {
	dto := ReviewDTO{
		ID:         r.ID().Google(),
		CustomerID: r.CustomerID().Google(),
		Rating:     r.Rating().Int(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
	targetID := r.Target().ID().Google()
	if r.Target().IsRestaurant() {
		dto.RestaurantID = &targetID
	} else {
		dto.MenuItemID = &targetID
	}
	return dto
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var target review.Target
	switch {
	case dto.RestaurantID != nil:
		restaurantID, idErr := kernel.UUIDFromGoogle(*dto.RestaurantID)
		if idErr != nil {
			return nil, idErr
		}
		target, err = review.NewRestaurantTarget(restaurantID)
	case dto.MenuItemID != nil:
		menuItemID, idErr := kernel.UUIDFromGoogle(*dto.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}
		target, err = review.NewMenuItemTarget(menuItemID)
	default:
		err = fmt.Errorf("review %s has no target", dto.ID)
	}
	if err != nil {
		return nil, err
	}

	rating, err := review.NewRating(dto.Rating)
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, customerID, target, rating, dto.Comment, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC()), nil
}
