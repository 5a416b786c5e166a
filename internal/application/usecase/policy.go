package usecase

import (
	"fmt"

	"devblog/internal/domain/errs"
	"devblog/internal/domain/model"
)

// OwnershipPolicy enforces author-only mutation of blogs.
type OwnershipPolicy struct{}

// Require returns Forbidden unless requesterID owns the blog. The action
// verb ("update", "delete") only shapes the message.
func (OwnershipPolicy) Require(blog *model.Blog, requesterID, action string) error {
	if blog.AuthorID != requesterID {
		return errs.New(errs.Forbidden, fmt.Sprintf("You can only %s your own blogs.", action))
	}

	return nil
}
