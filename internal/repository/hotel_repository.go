package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// HotelRepo reads the externally seeded hotels table. Each row holds the
// hotel as a JSON document which is returned without interpretation.
type HotelRepo struct {
	db *sqlx.DB
}

func NewHotelRepo(db *sqlx.DB) *HotelRepo { return &HotelRepo{db: db} }

// List returns every hotel document ordered by hotel_id.
func (r *HotelRepo) List(ctx context.Context) ([]model.Hotel, error) {
	var raw [][]byte
	if err := r.db.SelectContext(ctx, &raw, `SELECT doc FROM hotels ORDER BY hotel_id`); err != nil {
		return nil, err
	}
	out := make([]model.Hotel, 0, len(raw))
	for i, doc := range raw {
		var h model.Hotel
		if err := json.Unmarshal(doc, &h); err != nil {
			return nil, fmt.Errorf("decode hotel row %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}
