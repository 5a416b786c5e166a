package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/database"
)

type UserWriter struct {
	db *Database
}

func NewUserWriter(db *Database) *UserWriter {
	return &UserWriter{db: db}
}

func (w *UserWriter) Create(ctx context.Context, user *model.User) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(UserCollection)

	res, err := coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", database.ErrDuplicate
		}

		return "", err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	user.ID = id

	return id.Hex(), nil
}
