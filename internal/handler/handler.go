package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devconnect/internal/auth"
	apperrors "devconnect/internal/errors"
)

// domainError translates a service-layer error into the HTTP response shape.
func domainError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// pathID parses a UUID path parameter. Malformed ids answer 404, matching the
// behavior clients already rely on for unknown resources.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, "incorrect id")
	}
	return id, nil
}

// currentUser resolves the authenticated identity attached by the auth gate.
func currentUser(c echo.Context) (uuid.UUID, error) {
	id, ok := auth.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authorization denied")
	}
	return id, nil
}
