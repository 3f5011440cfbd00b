package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rmacedof/hotel-booking-service/internal/service"
)

// toHTTPError maps a service error kind to its HTTP status. This is the only
// place status codes and error kinds meet.
func toHTTPError(err error) *echo.HTTPError {
	switch service.KindOf(err) {
	case service.KindUnauthorized:
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case service.KindForbidden:
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case service.KindPaymentRequired:
		return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
	case service.KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
