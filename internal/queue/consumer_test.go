package queue

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking/internal/model"
)

func TestNewBookingEvent_Confirmed(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ev := NewBookingEvent(model.Booking{
		ID: "b-1", UserEmail: "a@x.com", HotelName: "Sea View",
		Status: model.BookingConfirmed, BookingDate: at, Nights: 2, Rooms: 1, TotalPrice: 300,
	})
	assert.Equal(t, BookingConfirmedQueue, ev.QueueName())
	assert.Equal(t, "2025-03-01T10:00:00Z", ev.OccurredAt)
	assert.Equal(t, "b-1", ev.BookingID)
}

func TestNewBookingEvent_CancelledUsesCancellationDate(t *testing.T) {
	booked := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cancelled := booked.Add(48 * time.Hour)
	ev := NewBookingEvent(model.Booking{
		ID: "b-2", Status: model.BookingCancelled, BookingDate: booked,
		CancellationDate: &cancelled, CancellationReason: "plans changed",
	})
	assert.Equal(t, BookingCancelledQueue, ev.QueueName())
	assert.Equal(t, "2025-03-03T10:00:00Z", ev.OccurredAt)
	assert.Equal(t, "plans changed", ev.CancellationReason)
}

func TestHandleMessage_AppendsLines(t *testing.T) {
	dir := t.TempDir()
	c := NewConsumer("amqp://unused", dir, slog.New(slog.NewTextHandler(io.Discard, nil)))

	first, err := json.Marshal(BookingEvent{BookingID: "b-1", Status: "CONFIRMED", UserEmail: "a@x.com", HotelName: "Sea View", OccurredAt: "2025-03-01T10:00:00Z"})
	require.NoError(t, err)
	second, err := json.Marshal(BookingEvent{BookingID: "b-1", Status: "CANCELLED", UserEmail: "a@x.com", CancellationReason: "sick", OccurredAt: "2025-03-02T10:00:00Z"})
	require.NoError(t, err)

	require.NoError(t, c.handleMessage(first))
	require.NoError(t, c.handleMessage(second))

	data, err := os.ReadFile(filepath.Join(dir, "booking.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Booking confirmed | booking_id=b-1")
	assert.Contains(t, lines[0], `hotel="Sea View"`)
	assert.Contains(t, lines[1], "Booking cancelled")
	assert.Contains(t, lines[1], `reason="sick"`)
}

func TestHandleMessage_RejectsInvalidJSON(t *testing.T) {
	c := NewConsumer("amqp://unused", t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, c.handleMessage([]byte("{not json")))
}
