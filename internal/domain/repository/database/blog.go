package database

import (
	"context"

	"devblog/internal/domain/model"
)

// BlogWriter persists new blogs and applies partial updates.
type BlogWriter interface {
	Create(ctx context.Context, blog *model.Blog) (string, error)
	Update(ctx context.Context, id string, update model.BlogUpdate) error

	// SetEngagement writes likes and the liked-by set together so a
	// completed toggle never leaves them out of step.
	SetEngagement(ctx context.Context, id string, likes int64, likedBy []string) error
}

// BlogRetriever fetches single blogs.
type BlogRetriever interface {
	GetByID(ctx context.Context, id string) (*model.Blog, error)

	// CountView atomically increments the view counter and returns the
	// updated document.
	CountView(ctx context.Context, id string) (*model.Blog, error)
}

// BlogRemover deletes blog documents.
type BlogRemover interface {
	Remove(ctx context.Context, id string) error
}

// BlogLister queries blog collections.
type BlogLister interface {
	// GetAll returns every blog ordered by creation time, newest first.
	GetAll(ctx context.Context) ([]model.Blog, error)

	// GetByAuthor returns the author's blogs in store order; callers
	// sort, since the query is a plain equality filter.
	GetByAuthor(ctx context.Context, authorID string) ([]model.Blog, error)
}
