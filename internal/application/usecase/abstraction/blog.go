package abstraction

import (
	"context"

	"devblog/internal/domain/dto"
	"devblog/internal/domain/model"
)

// Blog is the content-lifecycle facade.
type Blog interface {
	Create(ctx context.Context, authorID, title, content string, media *dto.FileUpload) (*model.Blog, error)
	GetAll(ctx context.Context) ([]model.Blog, error)

	// GetByID counts a view: every single-post fetch increments the
	// view counter and returns the updated record.
	GetByID(ctx context.Context, id string) (*model.Blog, error)

	Update(ctx context.Context, id, requesterID string, patch dto.BlogPatch) (*model.Blog, error)
	Delete(ctx context.Context, id, requesterID string) error
	GetByAuthor(ctx context.Context, authorID string) (*dto.AuthorFeed, error)
	ToggleLike(ctx context.Context, id, userID string) (*dto.LikeResult, error)
}
