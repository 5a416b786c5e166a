package database

import (
	"context"

	"devblog/internal/domain/model"
)

// UserWriter persists new user profiles.
type UserWriter interface {
	Create(ctx context.Context, user *model.User) (string, error)
}

// UserRetriever looks up user profiles by id or exact email.
type UserRetriever interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
