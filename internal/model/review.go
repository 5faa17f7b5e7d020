package model

import "time"

// Review is a guest's rating of a hotel. Reviews are immutable once created.
type Review struct {
	ID        string    `db:"id" bson:"-"`
	HotelID   int64     `db:"hotel_id" bson:"hotelId"`
	UserName  string    `db:"user_name" bson:"userName"`
	Rating    int       `db:"rating" bson:"rating"`
	Text      string    `db:"text" bson:"text"`
	CreatedAt time.Time `db:"created_at" bson:"createdAt"`
}
