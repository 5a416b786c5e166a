package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"devblog/internal/application/usecase/abstraction"
	"devblog/internal/domain/dto"
	"devblog/internal/domain/errs"
	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/database"
)

// mediaFolder is the media-store prefix all blog attachments live under.
const mediaFolder = "devblog/posts"

// Blog composes the blog repository, media orchestrator and ownership
// policy into the content lifecycle and engagement operations.
type Blog struct {
	writer    database.BlogWriter
	retriever database.BlogRetriever
	remover   database.BlogRemover
	lister    database.BlogLister
	users     database.UserRetriever
	media     abstraction.Media
	policy    OwnershipPolicy
}

func NewBlog(writer database.BlogWriter, retriever database.BlogRetriever,
	remover database.BlogRemover, lister database.BlogLister,
	users database.UserRetriever, media abstraction.Media,
) *Blog {
	return &Blog{
		writer:    writer,
		retriever: retriever,
		remover:   remover,
		lister:    lister,
		users:     users,
		media:     media,
	}
}

func (b *Blog) Create(ctx context.Context, authorID, title, content string, media *dto.FileUpload) (*model.Blog, error) {
	if title == "" || content == "" {
		return nil, errs.New(errs.Validation, "Please provide title and content.")
	}

	// Upload before touching the document store; an upload failure must
	// abort the create with the upstream error.
	var descriptor *model.MediaDescriptor
	if media != nil {
		resourceType := b.media.Classify(media.MimeType)

		var err error
		descriptor, err = b.media.Upload(ctx, media.Data, mediaFolder, resourceType)
		if err != nil {
			return nil, errs.Wrap(errs.Upstream, "Failed to upload media", err)
		}
	}

	author, err := b.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errs.New(errs.NotFound, "User not found.")
		}

		return nil, errs.Wrap(errs.Upstream, "Failed to create blog.", err)
	}

	now := time.Now().UTC()
	blog := &model.Blog{
		Title:   title,
		Content: content,

		// Author snapshot, denormalized at creation time and never
		// synced with later profile edits.
		AuthorID:    author.ID.Hex(),
		AuthorName:  author.Name,
		AuthorEmail: author.Email,

		Media:     descriptor,
		Views:     0,
		Likes:     0,
		LikedBy:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := b.writer.Create(ctx, blog); err != nil {
		return nil, errs.Wrap(errs.Upstream, "Failed to create blog.", err)
	}

	return blog, nil
}

func (b *Blog) GetAll(ctx context.Context) ([]model.Blog, error) {
	blogs, err := b.lister.GetAll(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.Upstream, "Failed to get blogs.", err)
	}

	return blogs, nil
}

// GetByID counts a view: the fetch and the increment happen in one atomic
// store operation, and the returned record carries the updated count.
func (b *Blog) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	blog, err := b.retriever.CountView(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errs.New(errs.NotFound, "Blog not found.")
		}

		return nil, errs.Wrap(errs.Upstream, "Failed to get blog.", err)
	}

	return blog, nil
}

func (b *Blog) Update(ctx context.Context, id, requesterID string, patch dto.BlogPatch) (*model.Blog, error) {
	blog, err := b.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errs.New(errs.NotFound, "Blog not found.")
		}

		return nil, errs.Wrap(errs.Upstream, "Failed to update blog.", err)
	}

	if err := b.policy.Require(blog, requesterID, "update"); err != nil {
		return nil, err
	}

	update := model.BlogUpdate{
		Title:     patch.Title,
		Content:   patch.Content,
		UpdatedAt: time.Now().UTC(),
	}

	// Media resolution: an explicit removal beats a supplied file; a
	// supplied file replaces the old attachment; otherwise the slot is
	// untouched. Old-media deletes are best effort.
	switch {
	case patch.RemoveMedia:
		if blog.Media != nil {
			b.media.Delete(ctx, blog.Media.PublicID, blog.Media.ResourceType)
			update.ClearMedia = true
		}
	case patch.Media != nil:
		if blog.Media != nil {
			b.media.Delete(ctx, blog.Media.PublicID, blog.Media.ResourceType)
		}

		resourceType := b.media.Classify(patch.Media.MimeType)
		descriptor, err := b.media.Upload(ctx, patch.Media.Data, mediaFolder, resourceType)
		if err != nil {
			return nil, errs.Wrap(errs.Upstream, "Failed to upload media", err)
		}
		update.Media = descriptor
	}

	if err := b.writer.Update(ctx, id, update); err != nil {
		return nil, errs.Wrap(errs.Upstream, "Failed to update blog.", err)
	}

	applyUpdate(blog, update)

	return blog, nil
}

func (b *Blog) Delete(ctx context.Context, id, requesterID string) error {
	blog, err := b.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return errs.New(errs.NotFound, "Blog not found.")
		}

		return errs.Wrap(errs.Upstream, "Failed to delete blog.", err)
	}

	if err := b.policy.Require(blog, requesterID, "delete"); err != nil {
		return err
	}

	if blog.Media != nil {
		b.media.Delete(ctx, blog.Media.PublicID, blog.Media.ResourceType)
	}

	if err := b.remover.Remove(ctx, id); err != nil {
		return errs.Wrap(errs.Upstream, "Failed to delete blog.", err)
	}

	return nil
}

func (b *Blog) GetByAuthor(ctx context.Context, authorID string) (*dto.AuthorFeed, error) {
	if _, err := b.users.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errs.New(errs.NotFound, "User not found.")
		}

		return nil, errs.Wrap(errs.Upstream, "Failed to get your blogs.", err)
	}

	blogs, err := b.lister.GetByAuthor(ctx, authorID)
	if err != nil {
		return nil, errs.Wrap(errs.Upstream, "Failed to get your blogs.", err)
	}

	// The store query is a plain equality filter; order here.
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})

	feed := &dto.AuthorFeed{
		Count: len(blogs),
		Blogs: blogs,
	}
	for i := range blogs {
		feed.TotalViews += blogs[i].Views
		feed.TotalLikes += blogs[i].Likes
	}

	return feed, nil
}

// ToggleLike flips userID's membership in the liked-by set and adjusts
// the counter, persisting both together. This is a read-modify-write over
// a snapshot: two concurrent toggles race and the later write wins; an
// atomic set-add/remove-with-delta at the store would be needed to close
// that window.
func (b *Blog) ToggleLike(ctx context.Context, id, userID string) (*dto.LikeResult, error) {
	blog, err := b.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errs.New(errs.NotFound, "Blog not found.")
		}

		return nil, errs.Wrap(errs.Upstream, "Failed to toggle like.", err)
	}

	members := make(map[string]struct{}, len(blog.LikedBy)+1)
	for _, member := range blog.LikedBy {
		members[member] = struct{}{}
	}
	_, liked := members[userID]

	likedBy := make([]string, 0, len(members)+1)
	likes := blog.Likes
	if liked {
		delete(members, userID)
		for _, member := range blog.LikedBy {
			if _, ok := members[member]; ok {
				likedBy = append(likedBy, member)
			}
		}
		likes--
	} else {
		likedBy = append(likedBy, blog.LikedBy...)
		likedBy = append(likedBy, userID)
		likes++
	}

	if likes < 0 {
		likes = 0
	}

	if err := b.writer.SetEngagement(ctx, id, likes, likedBy); err != nil {
		return nil, errs.Wrap(errs.Upstream, "Failed to toggle like.", err)
	}

	return &dto.LikeResult{
		Liked: !liked,
		Likes: likes,
	}, nil
}

func applyUpdate(blog *model.Blog, update model.BlogUpdate) {
	if update.Title != nil {
		blog.Title = *update.Title
	}
	if update.Content != nil {
		blog.Content = *update.Content
	}
	switch {
	case update.ClearMedia:
		blog.Media = nil
	case update.Media != nil:
		blog.Media = update.Media
	}
	blog.UpdatedAt = update.UpdatedAt
}
