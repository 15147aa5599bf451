package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const idempotencyKeyHeader = "Idempotency-Key"

// PlaceOrder handles POST /api/v1/orders - places an order for the customer.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return s.fail(c, err)
	}
	addressID, err := kernel.UUIDFromString(req.DeliveryAddressID)
	if err != nil {
		return s.fail(c, err)
	}
	items := make([]commands.PlaceOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		menuItemID, err := kernel.UUIDFromString(it.MenuItemID)
		if err != nil {
			return s.fail(c, err)
		}
		items = append(items, commands.PlaceOrderItem{MenuItemID: menuItemID, Quantity: it.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(actorOf(c), restaurantID, items, addressID,
		req.PaymentMethod, c.Request().Header.Get(idempotencyKeyHeader))
	if err != nil {
		return s.fail(c, err)
	}

	orderID, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveOrderOperation("place", err)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, placeOrderResponse{OrderID: orderID.String()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actorOf(c), orderID, req.Status)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveOrderOperation("update_status", err)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(o))
}

// AssignDeliveryPartner handles PUT /api/v1/orders/{orderId}/delivery-partner.
func (s *Server) AssignDeliveryPartner(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	var req assignPartnerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	partnerID, err := kernel.UUIDFromString(req.DeliveryPartnerID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignDeliveryPartnerCommand(actorOf(c), orderID, partnerID)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.handlers.AssignDeliveryPartner.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveOrderOperation("assign_partner", err)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(o))
}

// ListMyOrders handles GET /api/v1/orders/mine.
func (s *Server) ListMyOrders(c echo.Context) error {
	query, err := queries.NewGetMyOrdersQuery(actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.MyOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromViews(views))
}

// ListRestaurantOrders handles GET /api/v1/restaurants/{restaurantId}/orders.
func (s *Server) ListRestaurantOrders(c echo.Context) error {
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetRestaurantOrdersQuery(actorOf(c), restaurantID)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.RestaurantOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromViews(views))
}

// ListAllOrders handles GET /api/v1/orders - a page of every order, admin only.
func (s *Server) ListAllOrders(c echo.Context) error {
	page, err := queryInt(c, "page", queries.DefaultPage)
	if err != nil {
		return s.fail(c, err)
	}
	limit, err := queryInt(c, "limit", queries.DefaultLimit)
	if err != nil {
		return s.fail(c, err)
	}
	status, err := queryString(c, "status")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetAllOrdersQuery(actorOf(c), page, limit, status)
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.handlers.AllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, orderPageResponse{
		Orders: ordersFromViews(res.Orders),
		Total:  res.Total,
		Page:   res.Page,
		Limit:  res.Limit,
	})
}
