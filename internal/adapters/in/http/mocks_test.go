package http

import (
	"context"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrder struct{ mock.Mock }

func (m *MockPlaceOrder) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type MockUpdateOrderStatus struct{ mock.Mock }

func (m *MockUpdateOrderStatus) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAssignDeliveryPartner struct{ mock.Mock }

func (m *MockAssignDeliveryPartner) Handle(ctx context.Context, cmd commands.AssignDeliveryPartnerCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockIngestLocation struct{ mock.Mock }

func (m *MockIngestLocation) Handle(ctx context.Context, cmd commands.IngestLocationCommand) (tracking.Entry, error) {
	args := m.Called(ctx, cmd)
	e, _ := args.Get(0).(tracking.Entry)
	return e, args.Error(1)
}

type MockAddReview struct{ mock.Mock }

func (m *MockAddReview) Handle(ctx context.Context, cmd commands.AddReviewCommand) (*review.Review, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*review.Review)
	return r, args.Error(1)
}

type MockUpdateReview struct{ mock.Mock }

func (m *MockUpdateReview) Handle(ctx context.Context, cmd commands.UpdateReviewCommand) (*review.Review, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*review.Review)
	return r, args.Error(1)
}

type MockDeleteReview struct{ mock.Mock }

func (m *MockDeleteReview) Handle(ctx context.Context, cmd commands.DeleteReviewCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockMyOrders struct{ mock.Mock }

func (m *MockMyOrders) Handle(ctx context.Context, query queries.GetMyOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

type MockRestaurantOrders struct{ mock.Mock }

func (m *MockRestaurantOrders) Handle(ctx context.Context, query queries.GetRestaurantOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

type MockAllOrders struct{ mock.Mock }

func (m *MockAllOrders) Handle(ctx context.Context, query queries.GetAllOrdersQuery) (queries.GetAllOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).(queries.GetAllOrdersQueryResponse)
	return res, args.Error(1)
}

type MockLatestLocation struct{ mock.Mock }

func (m *MockLatestLocation) Handle(ctx context.Context, query queries.GetLatestLocationQuery) (queries.LocationView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).(queries.LocationView)
	return v, args.Error(1)
}

type MockActiveDeliveries struct{ mock.Mock }

func (m *MockActiveDeliveries) Handle(ctx context.Context, query queries.GetActiveDeliveriesQuery) ([]queries.ActiveDelivery, error) {
	args := m.Called(ctx, query)
	d, _ := args.Get(0).([]queries.ActiveDelivery)
	return d, args.Error(1)
}

type MockReviews struct{ mock.Mock }

func (m *MockReviews) Handle(ctx context.Context, query queries.GetReviewsQuery) (queries.GetReviewsQueryResponse, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).(queries.GetReviewsQueryResponse)
	return res, args.Error(1)
}
