package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetActiveDeliveriesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetActiveDeliveriesQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db, policy: policy}
}

// Handle returns non-terminal orders assigned to the actor, oldest first.
func (h GetActiveDeliveriesQueryHandler) Handle(ctx context.Context, query GetActiveDeliveriesQuery) ([]ActiveDelivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionListActiveDeliveries, services.Resource{}); err != nil {
		return nil, err
	}

	orders, err := loadOrderViews(ctx, h.db, `
		SELECT`+orderViewColumns+`
		FROM orders
		WHERE delivery_partner_id = ?
		  AND status NOT IN (?, ?)
		ORDER BY created_at, id
	`, query.Actor().ID().Google(), int(order.Delivered), int(order.Cancelled))
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID.Google())
	}
	latest, err := latestLocations(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	deliveries := make([]ActiveDelivery, 0, len(orders))
	for _, o := range orders {
		d := ActiveDelivery{Order: o}
		if loc, ok := latest[o.ID]; ok {
			d.Location = &loc
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}
