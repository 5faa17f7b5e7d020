package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// BookingRepo stores bookings in the bookings table. Rows carry an
// auto-increment seq column next to the public UUID so listings can be
// returned in insertion order. All timestamps are stored in UTC.
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, user_id, user_email, hotel_id, hotel_name, full_name, email, phone,
	check_in, check_out, nights, rooms, adults, children, price_per_night, total_price,
	meal_preference, special_requests, status, booking_date, cancellation_date, cancellation_reason`

// Create inserts b and populates its generated ID.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	b.ID = uuid.NewString()
	const q = `INSERT INTO bookings (` + bookingColumns + `) VALUES (
		:id, :user_id, :user_email, :hotel_id, :hotel_name, :full_name, :email, :phone,
		:check_in, :check_out, :nights, :rooms, :adults, :children, :price_per_night, :total_price,
		:meal_preference, :special_requests, :status, :booking_date, :cancellation_date, :cancellation_reason)`
	if _, err := r.db.NamedExecContext(ctx, q, b); err != nil {
		b.ID = ""
		return err
	}
	return nil
}

// GetByID returns the booking with the given ID or ErrNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (model.Booking, error) {
	var b model.Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrNotFound
	}
	return b, err
}

// ListByUserEmail returns the bookings owned by email in insertion order.
func (r *BookingRepo) ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return r.list(ctx, `WHERE user_email = ?`, email)
}

// ListByUserEmailAndStatus narrows ListByUserEmail to one status.
func (r *BookingRepo) ListByUserEmailAndStatus(ctx context.Context, email string, status model.BookingStatus) ([]model.Booking, error) {
	return r.list(ctx, `WHERE user_email = ? AND status = ?`, email, status)
}

// ListByStatus returns every booking in the given status.
func (r *BookingRepo) ListByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	return r.list(ctx, `WHERE status = ?`, status)
}

// ListAll returns every booking.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	return r.list(ctx, ``)
}

func (r *BookingRepo) list(ctx context.Context, where string, args ...any) ([]model.Booking, error) {
	out := []model.Booking{}
	q := `SELECT ` + bookingColumns + ` FROM bookings ` + where + ` ORDER BY seq ASC`
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel moves the booking to CANCELLED in a single conditional statement.
// It returns ErrNotFound when no booking has the ID and ErrConflict when the
// booking is already cancelled, so two racing cancellations cannot both
// succeed.
func (r *BookingRepo) Cancel(ctx context.Context, id, reason string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = ?, cancellation_date = ?, cancellation_reason = ?
		 WHERE id = ? AND status <> ?`,
		model.BookingCancelled, at, reason, id, model.BookingCancelled)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = ?)`, id); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConflict
}
