package service

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/queue"
)

// UserStore is the credential store. Lookups match the email exactly.
type UserStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// BookingStore persists bookings. List methods return insertion order.
// Cancel must only apply when the booking is not already cancelled.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id string) (model.Booking, error)
	ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error)
	ListByUserEmailAndStatus(ctx context.Context, email string, status model.BookingStatus) ([]model.Booking, error)
	ListByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	Cancel(ctx context.Context, id, reason string, at time.Time) error
}

// ReviewStore persists reviews.
type ReviewStore interface {
	Create(ctx context.Context, r *model.Review) error
	ListByHotel(ctx context.Context, hotelID int64) ([]model.Review, error)
}

// HotelStore reads hotel documents.
type HotelStore interface {
	List(ctx context.Context) ([]model.Hotel, error)
}

// EventPublisher delivers booking lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event queue.BookingEvent) error
}

// now returns the current UTC time at millisecond precision, the finest
// resolution both stores keep.
func now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
