package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/model/tracking"
)

type placeOrderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type placeOrderRequest struct {
	RestaurantID      string                  `json:"restaurantId"`
	DeliveryAddressID string                  `json:"deliveryAddressId"`
	PaymentMethod     string                  `json:"paymentMethod"`
	Items             []placeOrderItemRequest `json:"items"`
}

type placeOrderResponse struct {
	OrderID string `json:"orderId"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type assignPartnerRequest struct {
	DeliveryPartnerID string `json:"deliveryPartnerId"`
}

type locationRequest struct {
	Lat  *float64 `json:"lat"`
	Long *float64 `json:"long"`
}

type addReviewRequest struct {
	RestaurantID *string `json:"restaurantId"`
	MenuItemID   *string `json:"menuItemId"`
	Rating       int     `json:"rating"`
	Comment      string  `json:"comment"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type orderItemResponse struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
}

type paymentResponse struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

type orderResponse struct {
	ID                string              `json:"id"`
	CustomerID        string              `json:"customerId"`
	RestaurantID      string              `json:"restaurantId"`
	DeliveryAddressID string              `json:"deliveryAddressId"`
	DeliveryPartnerID *string             `json:"deliveryPartnerId"`
	Items             []orderItemResponse `json:"items"`
	TotalPrice        string              `json:"totalPrice"`
	Status            string              `json:"status"`
	Payment           paymentResponse     `json:"payment"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

type orderPageResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type locationResponse struct {
	OrderID    string    `json:"orderId"`
	Lat        float64   `json:"lat"`
	Long       float64   `json:"long"`
	RecordedAt time.Time `json:"recordedAt"`
}

type activeDeliveryResponse struct {
	Order    orderResponse     `json:"order"`
	Location *locationResponse `json:"location"`
}

type reviewResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	TargetType string    `json:"targetType,omitempty"`
	TargetID   string    `json:"targetId,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type reviewListResponse struct {
	TargetType string           `json:"targetType"`
	TargetID   string           `json:"targetId"`
	Ratings    float64          `json:"ratings"`
	Reviews    []reviewResponse `json:"reviews"`
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func orderFromAggregate(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, li := range o.Items() {
		items = append(items, orderItemResponse{
			MenuItemID: li.MenuItemID().String(),
			Quantity:   li.Quantity(),
			UnitPrice:  li.UnitPrice().String(),
		})
	}
	return orderResponse{
		ID:                o.ID().String(),
		CustomerID:        o.CustomerID().String(),
		RestaurantID:      o.RestaurantID().String(),
		DeliveryAddressID: o.DeliveryAddressID().String(),
		DeliveryPartnerID: optionalString(o.DeliveryPartner()),
		Items:             items,
		TotalPrice:        o.TotalPrice().String(),
		Status:            o.Status().String(),
		Payment: paymentResponse{
			Method: o.Payment().Method().String(),
			Status: o.Payment().Status().String(),
		},
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func orderFromView(v queries.OrderView) orderResponse {
	items := make([]orderItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, orderItemResponse{
			MenuItemID: it.MenuItemID.String(),
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice.String(),
		})
	}
	return orderResponse{
		ID:                v.ID.String(),
		CustomerID:        v.CustomerID.String(),
		RestaurantID:      v.RestaurantID.String(),
		DeliveryAddressID: v.DeliveryAddressID.String(),
		DeliveryPartnerID: optionalString(v.DeliveryPartnerID),
		Items:             items,
		TotalPrice:        v.TotalPrice.String(),
		Status:            v.Status.String(),
		Payment: paymentResponse{
			Method: v.PaymentMethod.String(),
			Status: v.PaymentStatus.String(),
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func ordersFromViews(views []queries.OrderView) []orderResponse {
	out := make([]orderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, orderFromView(v))
	}
	return out
}

func locationFromView(v queries.LocationView) locationResponse {
	return locationResponse{OrderID: v.OrderID.String(), Lat: v.Lat, Long: v.Long, RecordedAt: v.RecordedAt}
}

func locationFromEntry(orderID kernel.UUID, e tracking.Entry) locationResponse {
	return locationResponse{
		OrderID:    orderID.String(),
		Lat:        e.Point().Lat(),
		Long:       e.Point().Long(),
		RecordedAt: e.RecordedAt(),
	}
}

func reviewFromAggregate(r *review.Review) reviewResponse {
	return reviewResponse{
		ID:         r.ID().String(),
		CustomerID: r.CustomerID().String(),
		TargetType: r.Target().Type().String(),
		TargetID:   r.Target().ID().String(),
		Rating:     r.Rating().Int(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func reviewListFromResponse(res queries.GetReviewsQueryResponse) reviewListResponse {
	out := reviewListResponse{
		TargetType: res.Target.Type().String(),
		TargetID:   res.Target.ID().String(),
		Ratings:    res.Ratings,
		Reviews:    make([]reviewResponse, 0, len(res.Reviews)),
	}
	for _, r := range res.Reviews {
		out.Reviews = append(out.Reviews, reviewResponse{
			ID:         r.ID.String(),
			CustomerID: r.CustomerID.String(),
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return out
}
