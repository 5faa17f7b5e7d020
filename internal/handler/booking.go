package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/service"
)

// BookingHandler exposes the booking lifecycle under /api/bookings.
type BookingHandler struct {
	Bookings BookingService
	Log      *slog.Logger
}

func NewBookingHandler(b BookingService, log *slog.Logger) *BookingHandler {
	return &BookingHandler{Bookings: b, Log: log}
}

type cancelReq struct {
	Reason string `json:"reason"`
}

// Create stores the posted booking as CONFIRMED.
func (h *BookingHandler) Create(c echo.Context) error {
	var draft model.Booking
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, bookingFailure{Message: "Failed to create booking: invalid body"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	b, err := h.Bookings.CreateBooking(ctx, draft)
	if err != nil {
		h.Log.Error("create booking failed", "error", err)
		return c.JSON(http.StatusBadRequest, bookingFailure{Message: "Failed to create booking: " + err.Error()})
	}
	h.Log.Info("booking created", "booking_id", b.ID, "hotel_id", b.HotelID)
	return c.JSON(http.StatusOK, bookingResult{Success: true, Message: "Booking created successfully", Booking: b})
}

// ListByUser returns the bookings of one user email, optionally narrowed
// with ?status=.
func (h *BookingHandler) ListByUser(c echo.Context) error {
	// echo leaves params escaped when the request carries a RawPath
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid email"})
	}
	status, ok := statusFilter(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid status"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	var out []model.Booking
	if status == "" {
		out, err = h.Bookings.GetUserBookings(ctx, email)
	} else {
		out, err = h.Bookings.GetUserBookingsByStatus(ctx, email, status)
	}
	if err != nil {
		h.Log.Error("list user bookings failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list bookings"})
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one booking, or a bare 404.
func (h *BookingHandler) Get(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	b, ok, err := h.Bookings.GetBookingByID(ctx, c.Param("id"))
	if err != nil {
		h.Log.Error("get booking failed", "booking_id", c.Param("id"), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load booking"})
	}
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, b)
}

// Cancel cancels a booking. The body is optional; {"reason": "..."} is
// recorded when present.
func (h *BookingHandler) Cancel(c echo.Context) error {
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, bookingFailure{Message: "invalid body"})
	}
	id := c.Param("id")

	ctx, cancel := requestContext(c)
	defer cancel()

	b, err := h.Bookings.CancelBooking(ctx, id, req.Reason)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			msg = "Booking not found"
		case errors.Is(err, service.ErrAlreadyCancelled):
			msg = "Booking is already cancelled"
		default:
			h.Log.Error("cancel booking failed", "booking_id", id, "error", err)
			msg = "Failed to cancel booking"
		}
		return c.JSON(http.StatusBadRequest, bookingFailure{Message: msg})
	}
	h.Log.Info("booking cancelled", "booking_id", b.ID)
	return c.JSON(http.StatusOK, bookingResult{Success: true, Message: "Booking cancelled successfully", Booking: b})
}

// ListAll returns every booking, optionally narrowed with ?status=.
func (h *BookingHandler) ListAll(c echo.Context) error {
	status, ok := statusFilter(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid status"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	var (
		out []model.Booking
		err error
	)
	if status == "" {
		out, err = h.Bookings.GetAllBookings(ctx)
	} else {
		out, err = h.Bookings.GetBookingsByStatus(ctx, status)
	}
	if err != nil {
		h.Log.Error("list bookings failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list bookings"})
	}
	return c.JSON(http.StatusOK, out)
}

// statusFilter reads ?status=. An absent value yields "" and true.
func statusFilter(c echo.Context) (model.BookingStatus, bool) {
	raw := strings.TrimSpace(c.QueryParam("status"))
	if raw == "" {
		return "", true
	}
	s := model.BookingStatus(strings.ToUpper(raw))
	return s, s.Valid()
}
