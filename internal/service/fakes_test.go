package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/queue"
	"github.com/iliyamo/hotel-booking/internal/repository"
)

// --- in-memory UserStore ---

type memUserStore struct {
	mu        sync.Mutex
	byEmail   map[string]model.User
	seq       int
	existsErr error
	createErr error
}

func newMemUserStore() *memUserStore { return &memUserStore{byEmail: map[string]model.User{}} }

func (m *memUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUserStore) Create(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return repository.ErrEmailExists
	}
	m.seq++
	u.ID = fmt.Sprintf("u-%d", m.seq)
	m.byEmail[u.Email] = *u
	return nil
}

// --- in-memory BookingStore ---

type memBookingStore struct {
	mu        sync.Mutex
	rows      []model.Booking
	seq       int
	err       error
	cancelErr error
}

func newMemBookingStore() *memBookingStore { return &memBookingStore{} }

func (m *memBookingStore) Create(ctx context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.seq++
	b.ID = fmt.Sprintf("b-%d", m.seq)
	m.rows = append(m.rows, cloneBooking(*b))
	return nil
}

func (m *memBookingStore) GetByID(ctx context.Context, id string) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return model.Booking{}, m.err
	}
	for _, b := range m.rows {
		if b.ID == id {
			return cloneBooking(b), nil
		}
	}
	return model.Booking{}, repository.ErrNotFound
}

func (m *memBookingStore) filter(keep func(model.Booking) bool) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Booking{}
	for _, b := range m.rows {
		if keep(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (m *memBookingStore) ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return m.filter(func(b model.Booking) bool { return b.UserEmail == email })
}

func (m *memBookingStore) ListByUserEmailAndStatus(ctx context.Context, email string, status model.BookingStatus) ([]model.Booking, error) {
	return m.filter(func(b model.Booking) bool { return b.UserEmail == email && b.Status == status })
}

func (m *memBookingStore) ListByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	return m.filter(func(b model.Booking) bool { return b.Status == status })
}

func (m *memBookingStore) ListAll(ctx context.Context) ([]model.Booking, error) {
	return m.filter(func(model.Booking) bool { return true })
}

func (m *memBookingStore) Cancel(ctx context.Context, id, reason string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelErr != nil {
		return m.cancelErr
	}
	for i := range m.rows {
		if m.rows[i].ID != id {
			continue
		}
		if m.rows[i].Status == model.BookingCancelled {
			return repository.ErrConflict
		}
		m.rows[i].Status = model.BookingCancelled
		t := at
		m.rows[i].CancellationDate = &t
		m.rows[i].CancellationReason = reason
		return nil
	}
	return repository.ErrNotFound
}

func cloneBooking(b model.Booking) model.Booking {
	if b.CancellationDate != nil {
		t := *b.CancellationDate
		b.CancellationDate = &t
	}
	return b
}

// --- in-memory ReviewStore / HotelStore ---

type memReviewStore struct {
	rows []model.Review
	err  error
}

func (m *memReviewStore) Create(ctx context.Context, r *model.Review) error {
	if m.err != nil {
		return m.err
	}
	r.ID = fmt.Sprintf("r-%d", len(m.rows)+1)
	m.rows = append(m.rows, *r)
	return nil
}

func (m *memReviewStore) ListByHotel(ctx context.Context, hotelID int64) ([]model.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Review{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].HotelID == hotelID {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

type memHotelStore struct {
	docs []model.Hotel
	err  error
}

func (m *memHotelStore) List(ctx context.Context) ([]model.Hotel, error) { return m.docs, m.err }

// --- publisher ---

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.BookingEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, ev queue.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

var errStoreDown = errors.New("connection refused")
