package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/database"
)

type BlogRetriever struct {
	db *Database
}

func NewBlogRetriever(db *Database) *BlogRetriever {
	return &BlogRetriever{db: db}
}

func (r *BlogRetriever) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(BlogCollection)

	var blog model.Blog
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}

		return nil, err
	}

	return &blog, nil
}

// CountView increments the view counter with $inc and returns the updated
// document, so concurrent fetches each count exactly once.
func (r *BlogRetriever) CountView(ctx context.Context, id string) (*model.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, database.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(BlogCollection)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog model.Blog
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"views": 1}}, opts).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}

		return nil, err
	}

	return &blog, nil
}
