package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devblog/internal/domain/model"
)

type BlogLister struct {
	db *Database
}

func NewBlogLister(db *Database) *BlogLister {
	return &BlogLister{db: db}
}

// GetAll returns every blog, newest first.
func (l *BlogLister) GetAll(ctx context.Context) ([]model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(BlogCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []model.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

// GetByAuthor filters on author_id only; ordering is the caller's job.
func (l *BlogLister) GetByAuthor(ctx context.Context, authorID string) ([]model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(BlogCollection)

	cursor, err := coll.Find(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []model.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}
