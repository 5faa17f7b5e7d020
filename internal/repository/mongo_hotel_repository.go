package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/hotel-booking/internal/model"
)

// MongoHotelRepo reads the externally seeded hotels collection.
type MongoHotelRepo struct{ coll *mongo.Collection }

func NewMongoHotelRepo(db *mongo.Database) *MongoHotelRepo {
	return &MongoHotelRepo{coll: db.Collection("hotels")}
}

// List returns every hotel document as stored.
func (r *MongoHotelRepo) List(ctx context.Context) ([]model.Hotel, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.Hotel, 0, len(docs))
	for _, d := range docs {
		out = append(out, model.Hotel(d))
	}
	return out, nil
}
