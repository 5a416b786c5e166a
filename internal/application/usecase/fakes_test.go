package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devblog/internal/domain/entity"
	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/database"
)

// fakeUserStore is an in-memory UserRetriever + UserWriter.
type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) (string, error) {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return "", database.ErrDuplicate
		}
	}

	user.ID = primitive.NewObjectID()
	s.users[user.ID.Hex()] = user

	return user.ID.Hex(), nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}

	copied := *user

	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, database.ErrNotFound
}

// fakeBlogStore is an in-memory blog repository covering every role
// interface the Blog usecase depends on.
type fakeBlogStore struct {
	blogs map[string]*model.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: make(map[string]*model.Blog)}
}

func (s *fakeBlogStore) Create(_ context.Context, blog *model.Blog) (string, error) {
	blog.ID = primitive.NewObjectID()
	copied := *blog
	s.blogs[blog.ID.Hex()] = &copied

	return blog.ID.Hex(), nil
}

func (s *fakeBlogStore) Update(_ context.Context, id string, update model.BlogUpdate) error {
	blog, ok := s.blogs[id]
	if !ok {
		return database.ErrNotFound
	}

	applyUpdate(blog, update)

	return nil
}

func (s *fakeBlogStore) SetEngagement(_ context.Context, id string, likes int64, likedBy []string) error {
	blog, ok := s.blogs[id]
	if !ok {
		return database.ErrNotFound
	}

	blog.Likes = likes
	blog.LikedBy = likedBy

	return nil
}

func (s *fakeBlogStore) GetByID(_ context.Context, id string) (*model.Blog, error) {
	blog, ok := s.blogs[id]
	if !ok {
		return nil, database.ErrNotFound
	}

	copied := *blog

	return &copied, nil
}

func (s *fakeBlogStore) CountView(_ context.Context, id string) (*model.Blog, error) {
	blog, ok := s.blogs[id]
	if !ok {
		return nil, database.ErrNotFound
	}

	blog.Views++
	copied := *blog

	return &copied, nil
}

func (s *fakeBlogStore) Remove(_ context.Context, id string) error {
	if _, ok := s.blogs[id]; !ok {
		return database.ErrNotFound
	}

	delete(s.blogs, id)

	return nil
}

func (s *fakeBlogStore) GetAll(_ context.Context) ([]model.Blog, error) {
	blogs := make([]model.Blog, 0, len(s.blogs))
	for _, blog := range s.blogs {
		blogs = append(blogs, *blog)
	}

	return blogs, nil
}

func (s *fakeBlogStore) GetByAuthor(_ context.Context, authorID string) ([]model.Blog, error) {
	var blogs []model.Blog
	for _, blog := range s.blogs {
		if blog.AuthorID == authorID {
			blogs = append(blogs, *blog)
		}
	}

	return blogs, nil
}

// fakeMedia records orchestrator calls and can be told to fail uploads.
type fakeMedia struct {
	uploads   []string
	deletes   []string
	uploadErr error
}

func (m *fakeMedia) Classify(mimeType string) string {
	if strings.HasPrefix(mimeType, "video/") {
		return model.ResourceTypeVideo
	}

	return model.ResourceTypeImage
}

func (m *fakeMedia) Upload(_ context.Context, _ []byte, folder, resourceType string) (*model.MediaDescriptor, error) {
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}

	publicID := folder + "/uploaded-" + resourceType
	m.uploads = append(m.uploads, publicID)

	return &model.MediaDescriptor{
		URL:          "http://media.local/" + publicID,
		PublicID:     publicID,
		Format:       "png",
		ResourceType: resourceType,
		Width:        640,
		Height:       480,
	}, nil
}

func (m *fakeMedia) Delete(_ context.Context, publicID, _ string) {
	m.deletes = append(m.deletes, publicID)
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (fakeTokenService) Issue(userID string) (string, error) {
	return "token-" + userID, nil
}

func (fakeTokenService) Verify(token string) (string, error) {
	return strings.TrimPrefix(token, "token-"), nil
}

// fakeObjectStore implements the media-store uploader and remover.
type fakeObjectStore struct {
	objects   map[string][]byte
	removeErr error
	uploadErr error
	removed   []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) UploadObject(_ context.Context, objectName string, data []byte,
	_ string,
) (entity.ObjectUploadResult, error) {
	if s.uploadErr != nil {
		return entity.ObjectUploadResult{}, s.uploadErr
	}

	s.objects[objectName] = data

	return entity.ObjectUploadResult{
		ObjectName: objectName,
		Location:   "http://media.local/blog-media/" + objectName,
		Bucket:     "blog-media",
		Size:       int64(len(data)),
	}, nil
}

func (s *fakeObjectStore) RemoveObject(_ context.Context, objectName string) error {
	s.removed = append(s.removed, objectName)
	if s.removeErr != nil {
		return s.removeErr
	}

	delete(s.objects, objectName)

	return nil
}
