package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ReviewHandler serves /api/hotels/:hotelId/reviews.
type ReviewHandler struct {
	Reviews ReviewService
	Log     *slog.Logger
}

func NewReviewHandler(r ReviewService, log *slog.Logger) *ReviewHandler {
	return &ReviewHandler{Reviews: r, Log: log}
}

type createReviewReq struct {
	UserName string `json:"userName" validate:"required,max=100"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Text     string `json:"text" validate:"max=2000"`
}

// List returns a hotel's reviews, newest first.
func (h *ReviewHandler) List(c echo.Context) error {
	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reviews, err := h.Reviews.ListReviews(ctx, hotelID)
	if err != nil {
		h.Log.Error("list reviews failed", "hotel_id", hotelID, "error", err)
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Failed to fetch reviews: " + err.Error()})
	}
	out := make([]reviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, newReviewDTO(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Create records a review for the hotel in the path.
func (h *ReviewHandler) Create(c echo.Context) error {
	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid hotel id"})
	}
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "userName is required and rating must be between 1 and 5"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	r, err := h.Reviews.CreateReview(ctx, hotelID, req.UserName, req.Rating, req.Text)
	if err != nil {
		h.Log.Error("create review failed", "hotel_id", hotelID, "error", err)
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Failed to save review: " + err.Error()})
	}
	return c.JSON(http.StatusOK, newReviewDTO(r))
}
