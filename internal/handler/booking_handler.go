package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rmacedof/hotel-booking-service/internal/dto"
	"github.com/rmacedof/hotel-booking-service/internal/middleware"
	"github.com/rmacedof/hotel-booking-service/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/booking", h.CreateBooking)
	g.GET("/booking", h.GetBooking)
	g.PUT("/booking/:bookingId", h.UpdateBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// A zero roomId means "no room selected"; reject it before touching
	// storage at all.
	if req.RoomID == 0 {
		return echo.NewHTTPError(http.StatusForbidden, "roomId is required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), req.RoomID, middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.CreateBookingResponse{BookingID: booking.ID})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.GetBooking(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RoomID == 0 {
		return echo.NewHTTPError(http.StatusForbidden, "roomId is required")
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), req.RoomID, middleware.UserID(c), uint(bookingID))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.UpdateBookingResponse{ID: booking.ID})
}
