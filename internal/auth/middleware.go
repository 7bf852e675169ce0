package auth

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// HeaderToken is the custom header carrying the session token.
// Kept as-is for client compatibility (not a standard bearer scheme).
const HeaderToken = "x-auth-token"

// Middleware authenticates every protected request. A missing, malformed or
// expired token is rejected with 401 before the handler runs; on success the
// parsed Claims are attached to the request context.
func Middleware(svc *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + HeaderToken,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return svc.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "authorization denied")
		},
	})
}

// UserIDFromContext resolves the authenticated user id attached by Middleware.
// Handlers must read identity from here only, never from client-supplied ids.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get("user").(*Claims)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
