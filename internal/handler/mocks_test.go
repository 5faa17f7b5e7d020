package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/model"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// --- Mock AuthService ---

type mockAuthService struct {
	signupFn func(ctx context.Context, email, password, name string) (model.User, error)
	loginFn  func(ctx context.Context, email, password string) (model.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, email, password, name string) (model.User, error) {
	return m.signupFn(ctx, email, password, name)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (model.User, error) {
	return m.loginFn(ctx, email, password)
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn       func(ctx context.Context, draft model.Booking) (model.Booking, error)
	userFn         func(ctx context.Context, email string) ([]model.Booking, error)
	userByStatusFn func(ctx context.Context, email string, status model.BookingStatus) ([]model.Booking, error)
	getFn          func(ctx context.Context, id string) (model.Booking, bool, error)
	cancelFn       func(ctx context.Context, id, reason string) (model.Booking, error)
	allFn          func(ctx context.Context) ([]model.Booking, error)
	allByStatusFn  func(ctx context.Context, status model.BookingStatus) ([]model.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, draft model.Booking) (model.Booking, error) {
	return m.createFn(ctx, draft)
}
func (m *mockBookingService) GetUserBookings(ctx context.Context, email string) ([]model.Booking, error) {
	return m.userFn(ctx, email)
}
func (m *mockBookingService) GetUserBookingsByStatus(ctx context.Context, email string, status model.BookingStatus) ([]model.Booking, error) {
	return m.userByStatusFn(ctx, email, status)
}
func (m *mockBookingService) GetBookingByID(ctx context.Context, id string) (model.Booking, bool, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, id, reason string) (model.Booking, error) {
	return m.cancelFn(ctx, id, reason)
}
func (m *mockBookingService) GetAllBookings(ctx context.Context) ([]model.Booking, error) {
	return m.allFn(ctx)
}
func (m *mockBookingService) GetBookingsByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	return m.allByStatusFn(ctx, status)
}

// --- Mock ReviewService / HotelService ---

type mockReviewService struct {
	listFn   func(ctx context.Context, hotelID int64) ([]model.Review, error)
	createFn func(ctx context.Context, hotelID int64, userName string, rating int, text string) (model.Review, error)
}

func (m *mockReviewService) ListReviews(ctx context.Context, hotelID int64) ([]model.Review, error) {
	return m.listFn(ctx, hotelID)
}
func (m *mockReviewService) CreateReview(ctx context.Context, hotelID int64, userName string, rating int, text string) (model.Review, error) {
	return m.createFn(ctx, hotelID, userName, rating, text)
}

type mockHotelService struct {
	listFn func(ctx context.Context) ([]model.Hotel, error)
}

func (m *mockHotelService) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	return m.listFn(ctx)
}

// newContext builds an echo context for method/target with an optional JSON
// body and path params given as name, value pairs.
func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}
