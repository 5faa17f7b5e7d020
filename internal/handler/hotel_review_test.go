package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/service"
)

func TestHealth(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/healthz", "")
	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestListHotels_Handler(t *testing.T) {
	svc := &mockHotelService{
		listFn: func(ctx context.Context) ([]model.Hotel, error) {
			return []model.Hotel{{"hotelId": 1, "name": "Harbor Inn", "rooms": []any{"single", "double"}}}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/hotels", "")
	require.NoError(t, NewHotelHandler(svc, discard).List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"hotelId":1,"name":"Harbor Inn","rooms":["single","double"]}]`, rec.Body.String())
}

func TestListHotels_Handler_Failure(t *testing.T) {
	svc := &mockHotelService{
		listFn: func(ctx context.Context) ([]model.Hotel, error) {
			return nil, &service.PersistenceError{Op: "list hotels", Err: errors.New("no connection")}
		},
	}
	c, rec := newContext(http.MethodGet, "/api/hotels", "")
	require.NoError(t, NewHotelHandler(svc, discard).List(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp hotelError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed to read hotels from DB", resp.Error)
	assert.Equal(t, "list hotels: no connection", resp.Details)
}

func TestListReviews_Handler(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	var gotHotel int64
	svc := &mockReviewService{
		listFn: func(ctx context.Context, hotelID int64) ([]model.Review, error) {
			gotHotel = hotelID
			return []model.Review{{ID: "r-1", HotelID: hotelID, UserName: "Bob", Rating: 5, Text: "great", CreatedAt: at}}, nil
		},
	}
	h := NewReviewHandler(svc, discard)

	c, rec := newContext(http.MethodGet, "/api/hotels/42/reviews", "", "hotelId", "42")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotHotel)
	assert.JSONEq(t, `[{"id":"r-1","hotelId":42,"userName":"Bob","rating":5,"text":"great","createdAt":"2025-03-04T05:06:07Z"}]`, rec.Body.String())

	c, rec = newContext(http.MethodGet, "/api/hotels/abc/reviews", "", "hotelId", "abc")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReview_Handler(t *testing.T) {
	svc := &mockReviewService{
		createFn: func(ctx context.Context, hotelID int64, userName string, rating int, text string) (model.Review, error) {
			if userName == "fail" {
				return model.Review{}, &service.PersistenceError{Op: "create review", Err: errors.New("down")}
			}
			return model.Review{ID: "r-2", HotelID: hotelID, UserName: userName, Rating: rating, Text: text,
				CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}, nil
		},
	}
	h := NewReviewHandler(svc, discard)

	c, rec := newContext(http.MethodPost, "/api/hotels/3/reviews", `{"userName":"Eve","rating":4,"text":"clean"}`, "hotelId", "3")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	var dto reviewDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, reviewDTO{ID: "r-2", HotelID: 3, UserName: "Eve", Rating: 4, Text: "clean", CreatedAt: "2025-01-02T03:04:05Z"}, dto)

	bad := []string{
		`{"userName":"Eve","rating":9}`,
		`{"rating":3}`,
		`{"userName":"fail","rating":3}`,
		`{`,
	}
	for _, body := range bad {
		c, rec := newContext(http.MethodPost, "/api/hotels/3/reviews", body, "hotelId", "3")
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	}
}
