package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/queue"
	"github.com/iliyamo/hotel-booking/internal/repository"
)

// DefaultCancellationReason is recorded when a cancellation carries no reason.
const DefaultCancellationReason = "No reason provided"

// BookingService runs the booking lifecycle: CONFIRMED on creation,
// CANCELLED once via CancelBooking, never anything else.
type BookingService struct {
	bookings BookingStore
	events   EventPublisher
	log      *slog.Logger
	clock    func() time.Time
}

// NewBookingService returns a BookingService. events may be nil, in which
// case no lifecycle events are published.
func NewBookingService(bookings BookingStore, events EventPublisher, log *slog.Logger) *BookingService {
	if log == nil {
		log = slog.Default()
	}
	return &BookingService{bookings: bookings, events: events, log: log, clock: now}
}

// CreateBooking stores draft as a new confirmed booking. Status and booking
// date are overwritten and any id or cancellation data in the draft is
// dropped. Dates, prices and capacity are not validated.
func (s *BookingService) CreateBooking(ctx context.Context, draft model.Booking) (model.Booking, error) {
	b := draft
	b.ID = ""
	b.Status = model.BookingConfirmed
	b.BookingDate = s.clock()
	b.CancellationDate = nil
	b.CancellationReason = ""
	if err := s.bookings.Create(ctx, &b); err != nil {
		return model.Booking{}, persistence("create booking", err)
	}
	s.publish(ctx, b)
	return b, nil
}

// GetUserBookings returns the bookings whose user email equals email, in
// insertion order.
func (s *BookingService) GetUserBookings(ctx context.Context, email string) ([]model.Booking, error) {
	out, err := s.bookings.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, persistence("list user bookings", err)
	}
	return out, nil
}

// GetConfirmedBookings is GetUserBookings restricted to CONFIRMED bookings.
func (s *BookingService) GetConfirmedBookings(ctx context.Context, email string) ([]model.Booking, error) {
	return s.GetUserBookingsByStatus(ctx, email, model.BookingConfirmed)
}

// GetUserBookingsByStatus is GetUserBookings restricted to one status.
func (s *BookingService) GetUserBookingsByStatus(ctx context.Context, email string, status model.BookingStatus) ([]model.Booking, error) {
	out, err := s.bookings.ListByUserEmailAndStatus(ctx, email, status)
	if err != nil {
		return nil, persistence("list user bookings by status", err)
	}
	return out, nil
}

// GetBookingByID returns the booking and true, or false when no booking has
// the id. A missing booking is not an error.
func (s *BookingService) GetBookingByID(ctx context.Context, id string) (model.Booking, bool, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Booking{}, false, nil
	}
	if err != nil {
		return model.Booking{}, false, persistence("get booking", err)
	}
	return b, true, nil
}

// CancelBooking moves a confirmed booking to CANCELLED, stamping the
// cancellation date and reason. A blank reason is replaced with
// DefaultCancellationReason. The store applies the change only if the
// booking is still not cancelled, so of two concurrent cancellations one
// gets ErrAlreadyCancelled.
func (s *BookingService) CancelBooking(ctx context.Context, id, reason string) (model.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, persistence("get booking", err)
	}
	if b.IsCancelled() {
		return model.Booking{}, ErrAlreadyCancelled
	}

	if strings.TrimSpace(reason) == "" {
		reason = DefaultCancellationReason
	}
	at := s.clock()
	switch err := s.bookings.Cancel(ctx, id, reason, at); {
	case errors.Is(err, repository.ErrConflict):
		return model.Booking{}, ErrAlreadyCancelled
	case errors.Is(err, repository.ErrNotFound):
		return model.Booking{}, ErrBookingNotFound
	case err != nil:
		return model.Booking{}, persistence("cancel booking", err)
	}

	b.Status = model.BookingCancelled
	b.CancellationDate = &at
	b.CancellationReason = reason
	s.publish(ctx, b)
	return b, nil
}

// GetAllBookings returns every booking. Access control is left to the
// HTTP layer.
func (s *BookingService) GetAllBookings(ctx context.Context) ([]model.Booking, error) {
	out, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, persistence("list bookings", err)
	}
	return out, nil
}

// GetBookingsByStatus returns every booking in the given status.
func (s *BookingService) GetBookingsByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	out, err := s.bookings.ListByStatus(ctx, status)
	if err != nil {
		return nil, persistence("list bookings by status", err)
	}
	return out, nil
}

// publish sends the lifecycle event. Failures are logged and otherwise
// ignored; the booking is already stored.
func (s *BookingService) publish(ctx context.Context, b model.Booking) {
	if s.events == nil {
		return
	}
	ev := queue.NewBookingEvent(b)
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn("publish booking event failed", "booking_id", b.ID, "queue", ev.QueueName(), "error", err)
	}
}
