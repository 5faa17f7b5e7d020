package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/hotel-booking/internal/model"
)

type bookingDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	model.Booking `bson:",inline"`
}

func (d bookingDoc) toModel() model.Booking {
	b := d.Booking
	b.ID = d.ID.Hex()
	return b
}

// MongoBookingRepo stores bookings in the bookings collection. ObjectIDs
// grow with insertion time, so sorting on _id yields insertion order.
type MongoBookingRepo struct{ coll *mongo.Collection }

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

// Create inserts b and populates its generated ID.
func (r *MongoBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	doc := bookingDoc{ID: primitive.NewObjectID(), Booking: *b}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	b.ID = doc.ID.Hex()
	return nil
}

// GetByID returns the booking with the given ID or ErrNotFound. IDs that
// are not valid ObjectIDs cannot exist and are reported as ErrNotFound.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (model.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Booking{}, ErrNotFound
	}
	var doc bookingDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Booking{}, ErrNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	return doc.toModel(), nil
}

func (r *MongoBookingRepo) ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

func (r *MongoBookingRepo) ListByUserEmailAndStatus(ctx context.Context, email string, status model.BookingStatus) ([]model.Booking, error) {
	return r.find(ctx, bson.M{"userEmail": email, "status": status})
}

func (r *MongoBookingRepo) ListByStatus(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MongoBookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]model.Booking, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.Booking, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

// Cancel moves the booking to CANCELLED with a filter on the current
// status, mirroring BookingRepo.Cancel.
func (r *MongoBookingRepo) Cancel(ctx context.Context, id, reason string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": bson.M{"$ne": model.BookingCancelled}},
		bson.M{"$set": bson.M{
			"status":             model.BookingCancelled,
			"cancellationDate":   at,
			"cancellationReason": reason,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrConflict
}
