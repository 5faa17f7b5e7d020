package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// ReviewRepo stores hotel reviews.
type ReviewRepo struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Create inserts rv and populates its generated ID.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	rv.ID = uuid.NewString()
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO reviews (id, hotel_id, user_name, rating, text, created_at)
		 VALUES (:id, :hotel_id, :user_name, :rating, :text, :created_at)`, rv)
	if err != nil {
		rv.ID = ""
	}
	return err
}

// ListByHotel returns the reviews of a hotel, newest first.
func (r *ReviewRepo) ListByHotel(ctx context.Context, hotelID int64) ([]model.Review, error) {
	out := []model.Review{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, hotel_id, user_name, rating, text, created_at FROM reviews
		 WHERE hotel_id = ? ORDER BY created_at DESC, seq DESC`, hotelID)
	if err != nil {
		return nil, err
	}
	return out, nil
}
