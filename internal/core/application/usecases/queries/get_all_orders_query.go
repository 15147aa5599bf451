package queries

import (
	"errors"
	"math"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery is the admin listing of every order, one page at a time
// and optionally restricted to one status.
type GetAllOrdersQuery struct {
	actor  kernel.Actor
	page   int
	limit  int
	status *order.Status
	guard  guard.ConstructorGuard
}

// NewGetAllOrdersQuery applies DefaultPage and DefaultLimit to zero values.
// status may be empty.
func NewGetAllOrdersQuery(actor kernel.Actor, page, limit int, status string) (GetAllOrdersQuery, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	var pageErr, limitErr, statusErr error
	if page < 1 {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt32)
	}
	if limit < 1 || limit > MaxLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLimit)
	}

	var filter *order.Status
	if status != "" {
		parsed, err := order.ParseStatus(status)
		statusErr = err
		filter = &parsed
	}

	if err := errors.Join(actor.Validate(), pageErr, limitErr, statusErr); err != nil {
		return GetAllOrdersQuery{}, err
	}
	return GetAllOrdersQuery{
		actor:  actor,
		page:   page,
		limit:  limit,
		status: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

func (q GetAllOrdersQuery) Actor() kernel.Actor   { return q.actor }
func (q GetAllOrdersQuery) Page() int             { return q.page }
func (q GetAllOrdersQuery) Limit() int            { return q.limit }
func (q GetAllOrdersQuery) Status() *order.Status { return q.status }

// GetAllOrdersQueryResponse is one page of orders and the number of orders
// matching the filter across all pages.
type GetAllOrdersQueryResponse struct {
	Orders []OrderView
	Total  int64
	Page   int
	Limit  int
}
