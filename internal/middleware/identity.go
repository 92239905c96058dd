package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the resolved user id set by the upstream identity
// gateway. Authentication and token verification happen there; this
// service only ever receives an already-resolved id.
const userIDHeader = "X-User-ID"

const userIDContextKey = "userID"

// ResolvedIdentity extracts the authenticated user id from the gateway
// header and stores it in the request context.
func ResolvedIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(userIDHeader)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing resolved identity")
			}
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || id == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid resolved identity")
			}
			c.Set(userIDContextKey, uint(id))
			return next(c)
		}
	}
}

// UserID returns the resolved user id stored by ResolvedIdentity.
func UserID(c echo.Context) uint {
	if id, ok := c.Get(userIDContextKey).(uint); ok {
		return id
	}
	return 0
}
