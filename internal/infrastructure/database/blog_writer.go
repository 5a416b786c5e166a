package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/database"
)

type BlogWriter struct {
	db *Database
}

func NewBlogWriter(db *Database) *BlogWriter {
	return &BlogWriter{db: db}
}

func (w *BlogWriter) Create(ctx context.Context, blog *model.Blog) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(BlogCollection)

	res, err := coll.InsertOne(ctx, blog)
	if err != nil {
		return "", err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	blog.ID = id

	return id.Hex(), nil
}

// Update applies a partial $set built from the non-nil fields of update.
// ClearMedia nulls the media slot and wins over a supplied Media.
func (w *BlogWriter) Update(ctx context.Context, id string, update model.BlogUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return database.ErrNotFound
	}

	set := bson.M{"updated_at": update.UpdatedAt}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	switch {
	case update.ClearMedia:
		set["media"] = nil
	case update.Media != nil:
		set["media"] = update.Media
	}

	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(BlogCollection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}

	return nil
}

// SetEngagement writes the like counter and the liked-by set in a single
// update so a completed toggle keeps likes == len(liked_by).
func (w *BlogWriter) SetEngagement(ctx context.Context, id string, likes int64, likedBy []string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return database.ErrNotFound
	}

	if likedBy == nil {
		likedBy = []string{}
	}

	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(BlogCollection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"likes":    likes,
		"liked_by": likedBy,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}

	return nil
}
