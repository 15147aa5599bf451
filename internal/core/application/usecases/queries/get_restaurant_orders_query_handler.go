package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler reads every order of a restaurant, newest
// first, for the vendor owning it.
type GetRestaurantOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetRestaurantOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db, policy: policy}
}

// Handle fails with ObjectNotFoundError for an unknown restaurant and with
// AccessDeniedError when the actor is not its owner.
func (h GetRestaurantOrdersQueryHandler) Handle(ctx context.Context, query GetRestaurantOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeRole(query.Actor(), services.ActionListRestaurantOrders); err != nil {
		return nil, err
	}

	ownerID, err := restaurantOwner(ctx, h.db, query.RestaurantID())
	if err != nil {
		return nil, err
	}
	if err = h.policy.Authorize(query.Actor(), services.ActionListRestaurantOrders,
		services.Resource{RestaurantOwnerID: &ownerID}); err != nil {
		return nil, err
	}

	return loadOrderViews(ctx, h.db, `
		SELECT`+orderViewColumns+`
		FROM orders
		WHERE restaurant_id = ?
		ORDER BY created_at DESC, id
	`, query.RestaurantID().Google())
}

func restaurantOwner(ctx context.Context, db *gorm.DB, restaurantID kernel.UUID) (kernel.UUID, error) {
	var owners []uuid.UUID
	err := db.WithContext(ctx).
		Raw(`SELECT owner_id FROM restaurants WHERE id = ?`, restaurantID.Google()).
		Scan(&owners).Error
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(owners) == 0 {
		return kernel.UUID{}, errs.NewObjectNotFoundError("restaurant", restaurantID)
	}
	return kernel.UUIDFromGoogle(owners[0])
}
