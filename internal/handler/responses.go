package handler

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// requestTimeout bounds the store calls made on behalf of one request.
const requestTimeout = 5 * time.Second

var validate = validator.New()

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

// ----- response bodies -----

type errorResponse struct {
	Error string `json:"error"`
}

type authResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// bookingResult is the body of a successful create or cancel.
type bookingResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Booking model.Booking `json:"booking"`
}

type bookingFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type hotelError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type reviewDTO struct {
	ID        string `json:"id"`
	HotelID   int64  `json:"hotelId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

func newReviewDTO(r model.Review) reviewDTO {
	return reviewDTO{
		ID:        r.ID,
		HotelID:   r.HotelID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
