package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/hotel-booking/internal/model"
)

type userDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	model.User `bson:",inline"`
}

// MongoUserRepo stores users in the users collection. A unique index on
// email is created by database.EnsureMongoIndexes.
type MongoUserRepo struct{ coll *mongo.Collection }

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{coll: db.Collection("users")}
}

// ExistsByEmail reports whether a user with exactly this email exists.
func (r *MongoUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	return n > 0, err
}

// Create inserts u, assigning its ID.
func (r *MongoUserRepo) Create(ctx context.Context, u *model.User) error {
	doc := userDoc{ID: primitive.NewObjectID(), User: *u}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return err
	}
	u.ID = doc.ID.Hex()
	return nil
}

// GetByEmail fetches a user by exact email.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u := doc.User
	u.ID = doc.ID.Hex()
	return u, nil
}
