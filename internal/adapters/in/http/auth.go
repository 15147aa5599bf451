package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	tokenContextKey = "token"
	actorContextKey = "actor"
)

// Claims is the payload of the bearer token: the user id in "sub" and the
// user's role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for the user. A zero ttl yields a token
// without expiry.
func SignToken(secret []byte, userID kernel.UUID, role kernel.Role, ttl time.Duration) (string, error) {
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// authenticate verifies the bearer token, taken from the Authorization header
// or from the token query parameter for WebSocket clients, and stores the
// actor it names in the context.
func authenticate(secret []byte) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:    secret,
		SigningMethod: jwt.SigningMethodHS256.Name,
		ContextKey:    tokenContextKey,
		TokenLookup:   "header:Authorization:Bearer ,query:token",
		NewClaimsFunc: func(echo.Context) jwt.Claims { return new(Claims) },
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			actor, err := actorFromToken(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token does not name a valid user")
			}
			c.Set(actorContextKey, actor)
			return next(c)
		})
	}
}

func actorFromToken(c echo.Context) (kernel.Actor, error) {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return kernel.Actor{}, errors.New("no token in context")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return kernel.Actor{}, errors.New("unexpected claims type")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, err
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role)
}

// actorOf returns the actor stored by authenticate. The zero actor fails
// validation in every command and query constructor.
func actorOf(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorContextKey).(kernel.Actor)
	return actor
}
