// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// Queue names, one per booking lifecycle transition.
const (
	BookingConfirmedQueue = "booking.confirmed"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingEvent is published when a booking is created or cancelled. It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type BookingEvent struct {
	BookingID          string  `json:"booking_id"`
	Status             string  `json:"status"`
	UserID             string  `json:"user_id"`
	UserEmail          string  `json:"user_email"`
	HotelID            string  `json:"hotel_id"`
	HotelName          string  `json:"hotel_name"`
	CheckIn            string  `json:"check_in"`
	CheckOut           string  `json:"check_out"`
	Nights             int     `json:"nights"`
	Rooms              int     `json:"rooms"`
	TotalPrice         float64 `json:"total_price"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`
	OccurredAt         string  `json:"occurred_at"`
}

// NewBookingEvent snapshots b. The occurrence time is the cancellation date
// for cancelled bookings and the booking date otherwise.
func NewBookingEvent(b model.Booking) BookingEvent {
	at := b.BookingDate
	if b.IsCancelled() && b.CancellationDate != nil {
		at = *b.CancellationDate
	}
	return BookingEvent{
		BookingID:          b.ID,
		Status:             string(b.Status),
		UserID:             b.UserID,
		UserEmail:          b.UserEmail,
		HotelID:            b.HotelID,
		HotelName:          b.HotelName,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Nights:             b.Nights,
		Rooms:              b.Rooms,
		TotalPrice:         b.TotalPrice,
		CancellationReason: b.CancellationReason,
		OccurredAt:         at.UTC().Format(time.RFC3339),
	}
}

// QueueName returns the queue an event is routed to.
func (e BookingEvent) QueueName() string {
	if e.Status == string(model.BookingCancelled) {
		return BookingCancelledQueue
	}
	return BookingConfirmedQueue
}
