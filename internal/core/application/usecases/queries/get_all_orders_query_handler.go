package queries

import (
	"context"

	"foodorder/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler pages through every order for admins.
type GetAllOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetAllOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db, policy: policy}
}

// Handle returns orders newest first. A page past the end yields an empty
// list with the real total.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionListAllOrders, services.Resource{}); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	where := "TRUE"
	args := make([]any, 0, 3)
	if s := query.Status(); s != nil {
		where = "status = ?"
		args = append(args, int(*s))
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE `+where, args...).
		Scan(&total).Error; err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	orders, err := loadOrderViews(ctx, h.db, `
		SELECT`+orderViewColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...)
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	return GetAllOrdersQueryResponse{
		Orders: orders,
		Total:  total,
		Page:   query.Page(),
		Limit:  query.Limit(),
	}, nil
}
