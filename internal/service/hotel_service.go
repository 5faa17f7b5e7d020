package service

import (
	"context"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// HotelService reads the seeded hotel documents.
type HotelService struct {
	hotels HotelStore
}

func NewHotelService(hotels HotelStore) *HotelService { return &HotelService{hotels: hotels} }

// ListHotels returns every hotel document unchanged.
func (s *HotelService) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	out, err := s.hotels.List(ctx)
	if err != nil {
		return nil, persistence("list hotels", err)
	}
	return out, nil
}
