package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetReviewsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetReviewsQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetReviewsQueryHandler {
	return GetReviewsQueryHandler{db: db, policy: policy}
}

// Handle returns the reviews newest first. An unknown target is an
// ObjectNotFoundError.
func (h GetReviewsQueryHandler) Handle(ctx context.Context, query GetReviewsQuery) (GetReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReviewsQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionListReviews, services.Resource{}); err != nil {
		return GetReviewsQueryResponse{}, err
	}

	target := query.Target()
	table, column := "menu_items", "menu_item_id"
	if target.IsRestaurant() {
		table, column = "restaurants", "restaurant_id"
	}

	var ratings []float64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT ratings FROM `+table+` WHERE id = ?`, target.ID().Google()).
		Scan(&ratings).Error; err != nil {
		return GetReviewsQueryResponse{}, err
	}
	if len(ratings) == 0 {
		return GetReviewsQueryResponse{}, errs.NewObjectNotFoundError(target.Type().String(), target.ID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			rating,
			comment,
			created_at,
			updated_at
		FROM reviews
		WHERE `+column+` = ?
		ORDER BY created_at DESC, id
	`, target.ID().Google()).Rows()
	if err != nil {
		return GetReviewsQueryResponse{}, err
	}
	defer rows.Close()

	reviews := make([]ReviewView, 0)
	for rows.Next() {
		var (
			id, customerID uuid.UUID
			view           ReviewView
		)
		if err = rows.Scan(&id, &customerID, &view.Rating, &view.Comment, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return GetReviewsQueryResponse{}, err
		}
		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return GetReviewsQueryResponse{}, err
		}
		if view.CustomerID, err = kernel.UUIDFromGoogle(customerID); err != nil {
			return GetReviewsQueryResponse{}, err
		}
		reviews = append(reviews, view)
	}
	if err = rows.Err(); err != nil {
		return GetReviewsQueryResponse{}, err
	}

	return GetReviewsQueryResponse{
		Target:  target,
		Ratings: ratings[0],
		Reviews: reviews,
	}, nil
}
