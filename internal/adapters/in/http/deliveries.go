package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PushLocation handles POST /api/v1/orders/{orderId}/location - a ping from
// the assigned delivery partner.
func (s *Server) PushLocation(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Lat == nil || req.Long == nil {
		return s.fail(c, errs.NewValueIsRequiredError("lat and long"))
	}

	cmd, err := commands.NewIngestLocationCommand(actorOf(c), orderID, *req.Lat, *req.Long)
	if err != nil {
		return s.fail(c, err)
	}
	entry, err := s.handlers.IngestLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, locationFromEntry(orderID, entry))
}

// GetLocation handles GET /api/v1/orders/{orderId}/location.
func (s *Server) GetLocation(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetLatestLocationQuery(actorOf(c), orderID)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.LatestLocation.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, locationFromView(view))
}

// ListActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) ListActiveDeliveries(c echo.Context) error {
	query, err := queries.NewGetActiveDeliveriesQuery(actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}
	deliveries, err := s.handlers.ActiveDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]activeDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		item := activeDeliveryResponse{Order: orderFromView(d.Order)}
		if d.Location != nil {
			loc := locationFromView(*d.Location)
			item.Location = &loc
		}
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, out)
}
