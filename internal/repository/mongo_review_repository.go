package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/hotel-booking/internal/model"
)

type reviewDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	model.Review `bson:",inline"`
}

// MongoReviewRepo stores reviews in the reviews collection.
type MongoReviewRepo struct{ coll *mongo.Collection }

func NewMongoReviewRepo(db *mongo.Database) *MongoReviewRepo {
	return &MongoReviewRepo{coll: db.Collection("reviews")}
}

func (r *MongoReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	doc := reviewDoc{ID: primitive.NewObjectID(), Review: *rv}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	rv.ID = doc.ID.Hex()
	return nil
}

// ListByHotel returns the reviews of a hotel, newest first.
func (r *MongoReviewRepo) ListByHotel(ctx context.Context, hotelID int64) ([]model.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"hotelId": hotelID}, opts)
	if err != nil {
		return nil, err
	}
	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.Review, 0, len(docs))
	for _, d := range docs {
		rv := d.Review
		rv.ID = d.ID.Hex()
		out = append(out, rv)
	}
	return out, nil
}
