package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/review"

	"github.com/labstack/echo/v4"
)

// AddReview handles POST /api/v1/reviews.
func (s *Server) AddReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	restaurantID, restaurantErr := optionalUUID("restaurantId", req.RestaurantID)
	menuItemID, menuItemErr := optionalUUID("menuItemId", req.MenuItemID)
	if err := errors.Join(restaurantErr, menuItemErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddReviewCommand(actorOf(c), restaurantID, menuItemID, req.Rating, req.Comment)
	if err != nil {
		return s.fail(c, err)
	}
	r, err := s.handlers.AddReview.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, reviewFromAggregate(r))
}

// UpdateReview handles PATCH /api/v1/reviews/{reviewId}.
func (s *Server) UpdateReview(c echo.Context) error {
	reviewID, err := pathUUID(c, "reviewId")
	if err != nil {
		return s.fail(c, err)
	}
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateReviewCommand(actorOf(c), reviewID, req.Rating, req.Comment)
	if err != nil {
		return s.fail(c, err)
	}
	r, err := s.handlers.UpdateReview.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, reviewFromAggregate(r))
}

// DeleteReview handles DELETE /api/v1/reviews/{reviewId}.
func (s *Server) DeleteReview(c echo.Context) error {
	reviewID, err := pathUUID(c, "reviewId")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewDeleteReviewCommand(actorOf(c), reviewID)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.DeleteReview.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ModerateReview handles POST /api/v1/reviews/{reviewId}/moderation - an
// admin removal.
func (s *Server) ModerateReview(c echo.Context) error {
	reviewID, err := pathUUID(c, "reviewId")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewModerateReviewCommand(actorOf(c), reviewID)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.DeleteReview.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRestaurantReviews handles GET /api/v1/restaurants/{restaurantId}/reviews.
func (s *Server) ListRestaurantReviews(c echo.Context) error {
	return s.listReviews(c, review.TargetTypeRestaurant, "restaurantId")
}

// ListMenuItemReviews handles GET /api/v1/menu-items/{menuItemId}/reviews.
func (s *Server) ListMenuItemReviews(c echo.Context) error {
	return s.listReviews(c, review.TargetTypeMenuItem, "menuItemId")
}

func (s *Server) listReviews(c echo.Context, kind review.TargetType, param string) error {
	targetID, err := pathUUID(c, param)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetReviewsQuery(actorOf(c), kind.String(), targetID)
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.handlers.Reviews.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, reviewListFromResponse(res))
}
