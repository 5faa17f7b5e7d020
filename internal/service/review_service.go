package service

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// ReviewService lists and records hotel reviews.
type ReviewService struct {
	reviews ReviewStore
	clock   func() time.Time
}

func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews, clock: now}
}

// ListReviews returns the reviews of a hotel, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, hotelID int64) ([]model.Review, error) {
	out, err := s.reviews.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, persistence("list reviews", err)
	}
	return out, nil
}

// CreateReview stores a review for hotelID stamped with the current time.
func (s *ReviewService) CreateReview(ctx context.Context, hotelID int64, userName string, rating int, text string) (model.Review, error) {
	r := model.Review{
		HotelID:   hotelID,
		UserName:  userName,
		Rating:    rating,
		Text:      text,
		CreatedAt: s.clock(),
	}
	if err := s.reviews.Create(ctx, &r); err != nil {
		return model.Review{}, persistence("create review", err)
	}
	return r, nil
}
