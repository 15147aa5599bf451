package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RouterConfig holds the settings of the HTTP surface.
type RouterConfig struct {
	JWTSecret []byte
	// RateLimitRPS is the sustained request rate allowed per client IP under
	// /api/v1. Zero disables limiting.
	RateLimitRPS float64
}

// NewRouter builds the echo instance serving the API, the operational
// endpoints and the swagger UI.
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validate, err := validateRequests(doc)
	if err != nil {
		return nil, err
	}
	swagger, err := swaggerHandler(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = s.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(s.logger))
	if s.metrics != nil {
		e.Use(s.metrics.Middleware())
		e.GET("/metrics", s.metrics.Handler())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", swagger)

	api := e.Group("/api/v1")
	if cfg.RateLimitRPS > 0 {
		api.Use(rateLimiter(cfg.RateLimitRPS))
	}
	api.Use(authenticate(cfg.JWTSecret))
	api.Use(validate)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListAllOrders)
	api.GET("/orders/mine", s.ListMyOrders)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.PUT("/orders/:orderId/delivery-partner", s.AssignDeliveryPartner)
	api.POST("/orders/:orderId/location", s.PushLocation)
	api.GET("/orders/:orderId/location", s.GetLocation)
	api.GET("/restaurants/:restaurantId/orders", s.ListRestaurantOrders)
	api.GET("/deliveries/active", s.ListActiveDeliveries)

	api.POST("/reviews", s.AddReview)
	api.PATCH("/reviews/:reviewId", s.UpdateReview)
	api.DELETE("/reviews/:reviewId", s.DeleteReview)
	api.POST("/reviews/:reviewId/moderation", s.ModerateReview)
	api.GET("/restaurants/:restaurantId/reviews", s.ListRestaurantReviews)
	api.GET("/menu-items/:menuItemId/reviews", s.ListMenuItemReviews)

	api.GET("/realtime", s.Realtime)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"request_id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request", slog.Group("http", attrs...), slog.Any("error", v.Error))
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", slog.Group("http", attrs...))
			return nil
		},
	})
}

func rateLimiter(rps float64) echo.MiddlewareFunc {
	burst := int(rps * 2)
	if burst < 1 {
		burst = 1
	}
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(rps),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, ErrorResponse{Code: http.StatusForbidden, Message: "unable to identify client"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, ErrorResponse{Code: http.StatusTooManyRequests, Message: "rate limit exceeded"})
		},
	})
}
