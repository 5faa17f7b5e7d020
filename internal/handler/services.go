package handler

import (
	"context"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// The handler depends on these narrow views of the services so tests can
// swap in doubles.

type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.User, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, draft model.Booking) (model.Booking, error)
	GetUserBookings(ctx context.Context, email string) ([]model.Booking, error)
	GetUserBookingsByStatus(ctx context.Context, email string, status model.BookingStatus) ([]model.Booking, error)
	GetBookingByID(ctx context.Context, id string) (model.Booking, bool, error)
	CancelBooking(ctx context.Context, id, reason string) (model.Booking, error)
	GetAllBookings(ctx context.Context) ([]model.Booking, error)
	GetBookingsByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error)
}

type ReviewService interface {
	ListReviews(ctx context.Context, hotelID int64) ([]model.Review, error)
	CreateReview(ctx context.Context, hotelID int64, userName string, rating int, text string) (model.Review, error)
}

type HotelService interface {
	ListHotels(ctx context.Context) ([]model.Hotel, error)
}
