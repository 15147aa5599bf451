package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLatestLocationQueryHandler returns the last location of a delivery to
// the order's customer or its assigned partner. Vendors and admins are
// always denied.
type GetLatestLocationQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetLatestLocationQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetLatestLocationQueryHandler {
	return GetLatestLocationQueryHandler{db: db, policy: policy}
}

// Handle returns:
//   - AccessDeniedError when the actor may not see the order's location
//   - ObjectNotFoundError when the order does not exist or no ping arrived yet
func (h GetLatestLocationQueryHandler) Handle(ctx context.Context, query GetLatestLocationQuery) (LocationView, error) {
	if err := query.Validate(); err != nil {
		return LocationView{}, err
	}
	if err := h.policy.AuthorizeRole(query.Actor(), services.ActionReadLocation); err != nil {
		return LocationView{}, err
	}

	res, err := orderParties(ctx, h.db, query.OrderID())
	if err != nil {
		return LocationView{}, err
	}
	if err = h.policy.Authorize(query.Actor(), services.ActionReadLocation, res); err != nil {
		return LocationView{}, err
	}

	latest, err := latestLocations(ctx, h.db, []uuid.UUID{query.OrderID().Google()})
	if err != nil {
		return LocationView{}, err
	}
	view, ok := latest[query.OrderID()]
	if !ok {
		return LocationView{}, errs.NewObjectNotFoundError("deliveryTracking", query.OrderID())
	}
	return view, nil
}

// orderParties loads the ownership facts of an order.
func orderParties(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (services.Resource, error) {
	var row struct {
		CustomerID        uuid.UUID
		DeliveryPartnerID *uuid.UUID
	}
	result := db.WithContext(ctx).
		Raw(`SELECT customer_id, delivery_partner_id FROM orders WHERE id = ?`, orderID.Google()).
		Scan(&row)
	if result.Error != nil {
		return services.Resource{}, result.Error
	}
	if result.RowsAffected == 0 {
		return services.Resource{}, errs.NewObjectNotFoundError("order", orderID)
	}

	customerID, err := kernel.UUIDFromGoogle(row.CustomerID)
	if err != nil {
		return services.Resource{}, err
	}
	res := services.Resource{OrderCustomerID: &customerID}
	if row.DeliveryPartnerID != nil {
		partnerID, partnerErr := kernel.UUIDFromGoogle(*row.DeliveryPartnerID)
		if partnerErr != nil {
			return services.Resource{}, partnerErr
		}
		res.AssignedPartnerID = &partnerID
	}
	return res, nil
}
