package handlers

import (
	"net/http"

	"github.com/havenpress/backend/internal/apperrors"
	"github.com/labstack/echo/v4"
)

// httpError maps tagged core errors onto transport status codes. Conflict
// never reaches here in practice; the engines resolve races internally.
func httpError(err error) *echo.HTTPError {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case apperrors.KindValidation:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
