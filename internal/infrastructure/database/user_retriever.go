package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/database"
)

type UserRetriever struct {
	db *Database
}

func NewUserRetriever(db *Database) *UserRetriever {
	return &UserRetriever{db: db}
}

func (r *UserRetriever) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can't match any document.
		return nil, database.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	var user model.User
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

// GetByEmail does a case-sensitive exact match on the stored email.
func (r *UserRetriever) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	var user model.User
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}
