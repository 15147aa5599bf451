package http

import (
	"errors"
	"net/http"

	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail renders err. Domain errors carry their own message; anything else is
// logged and hidden behind a generic one.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	if code != http.StatusInternalServerError {
		return c.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
	}

	s.logger.ErrorContext(c.Request().Context(), "request failed",
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"method", c.Request().Method,
		"route", c.Path(),
		"error", err,
	)
	return c.JSON(code, ErrorResponse{Code: code, Message: "internal server error"})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

// HTTPErrorHandler renders errors escaping the handlers, such as the ones
// raised by middleware, in the same shape as handler errors.
func (s *Server) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		_ = c.JSON(he.Code, ErrorResponse{Code: he.Code, Message: message})
		return
	}
	_ = s.fail(c, err)
}
