package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HotelHandler serves the seeded hotel documents.
type HotelHandler struct {
	Hotels HotelService
	Log    *slog.Logger
}

func NewHotelHandler(h HotelService, log *slog.Logger) *HotelHandler {
	return &HotelHandler{Hotels: h, Log: log}
}

// List returns every hotel document as stored.
func (h *HotelHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	hotels, err := h.Hotels.ListHotels(ctx)
	if err != nil {
		h.Log.Error("list hotels failed", "error", err)
		return c.JSON(http.StatusInternalServerError, hotelError{Error: "failed to read hotels from DB", Details: err.Error()})
	}
	return c.JSON(http.StatusOK, hotels)
}
