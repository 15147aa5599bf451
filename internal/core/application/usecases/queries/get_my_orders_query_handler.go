package queries

import (
	"context"

	"foodorder/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler reads a customer's orders, newest first.
//
// Example:
//
//	handler := NewGetMyOrdersQueryHandler(db, services.NewDefaultAccessPolicy())
//	query, err := NewGetMyOrdersQuery(actor)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetMyOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetMyOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db, policy: policy}
}

// Handle returns an AccessDeniedError for any role but customer.
func (h GetMyOrdersQueryHandler) Handle(ctx context.Context, query GetMyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionListMyOrders, services.Resource{}); err != nil {
		return nil, err
	}

	return loadOrderViews(ctx, h.db, `
		SELECT`+orderViewColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id
	`, query.Actor().ID().Google())
}
