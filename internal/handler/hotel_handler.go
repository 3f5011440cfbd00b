package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rmacedof/hotel-booking-service/internal/middleware"
	"github.com/rmacedof/hotel-booking-service/internal/service"
)

type HotelHandler struct {
	svc service.HotelService
}

func NewHotelHandler(svc service.HotelService) *HotelHandler {
	return &HotelHandler{svc: svc}
}

func (h *HotelHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/hotels", h.ListHotels)
	g.GET("/hotels/:hotelId", h.GetHotelRooms)
}

// ListHotels answers 201 on success. The original API shipped that way and
// clients depend on it, so it stays.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.svc.ListHotels(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, hotels)
}

func (h *HotelHandler) GetHotelRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	hotel, err := h.svc.GetHotelWithRooms(c.Request().Context(), uint(hotelID), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, hotel)
}
