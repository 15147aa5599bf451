package http

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/model/tracking"
	"foodorder/internal/pkg/pubsub"
)

type (
	placeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (kernel.UUID, error)
	}
	updateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}
	assignDeliveryPartnerHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDeliveryPartnerCommand) (*order.Order, error)
	}
	ingestLocationHandler interface {
		Handle(ctx context.Context, cmd commands.IngestLocationCommand) (tracking.Entry, error)
	}
	addReviewHandler interface {
		Handle(ctx context.Context, cmd commands.AddReviewCommand) (*review.Review, error)
	}
	updateReviewHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateReviewCommand) (*review.Review, error)
	}
	deleteReviewHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteReviewCommand) error
	}

	myOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetMyOrdersQuery) ([]queries.OrderView, error)
	}
	restaurantOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetRestaurantOrdersQuery) ([]queries.OrderView, error)
	}
	allOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) (queries.GetAllOrdersQueryResponse, error)
	}
	latestLocationHandler interface {
		Handle(ctx context.Context, query queries.GetLatestLocationQuery) (queries.LocationView, error)
	}
	activeDeliveriesHandler interface {
		Handle(ctx context.Context, query queries.GetActiveDeliveriesQuery) ([]queries.ActiveDelivery, error)
	}
	reviewsHandler interface {
		Handle(ctx context.Context, query queries.GetReviewsQuery) (queries.GetReviewsQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP. Every field is required.
type Handlers struct {
	PlaceOrder            placeOrderHandler
	UpdateOrderStatus     updateOrderStatusHandler
	AssignDeliveryPartner assignDeliveryPartnerHandler
	IngestLocation        ingestLocationHandler
	AddReview             addReviewHandler
	UpdateReview          updateReviewHandler
	DeleteReview          deleteReviewHandler

	MyOrders         myOrdersHandler
	RestaurantOrders restaurantOrdersHandler
	AllOrders        allOrdersHandler
	LatestLocation   latestLocationHandler
	ActiveDeliveries activeDeliveriesHandler
	Reviews          reviewsHandler
}

// Server translates HTTP requests into commands and queries and renders
// their results.
type Server struct {
	handlers Handlers
	hub      *pubsub.Hub
	metrics  *Metrics
	logger   *slog.Logger
}

// NewServer creates a server over the given use cases. The hub feeds the
// realtime channel.
func NewServer(handlers Handlers, hub *pubsub.Hub, metrics *Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		hub:      hub,
		metrics:  metrics,
		logger:   logger.With("component", "http"),
	}
}
