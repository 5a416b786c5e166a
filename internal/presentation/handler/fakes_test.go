package handler

import (
	"context"

	"devblog/internal/domain/dto"
	"devblog/internal/domain/model"
)

// fakeAuthService satisfies abstraction.Auth with pluggable behavior.
type fakeAuthService struct {
	registerFn func(email, password, name string) (*dto.AuthResult, error)
	loginFn    func(email, password string) (*dto.AuthResult, error)
	getMeFn    func(userID string) (*dto.UserProfile, error)
}

func (f *fakeAuthService) Register(_ context.Context, email, password, name string) (*dto.AuthResult, error) {
	return f.registerFn(email, password, name)
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (*dto.AuthResult, error) {
	return f.loginFn(email, password)
}

func (f *fakeAuthService) GetMe(_ context.Context, userID string) (*dto.UserProfile, error) {
	return f.getMeFn(userID)
}

// fakeBlogService satisfies abstraction.Blog with pluggable behavior and
// records the last create/update arguments for assertions.
type fakeBlogService struct {
	createFn      func(authorID, title, content string, media *dto.FileUpload) (*model.Blog, error)
	getAllFn      func() ([]model.Blog, error)
	getByIDFn     func(id string) (*model.Blog, error)
	updateFn      func(id, requesterID string, patch dto.BlogPatch) (*model.Blog, error)
	deleteFn      func(id, requesterID string) error
	getByAuthorFn func(authorID string) (*dto.AuthorFeed, error)
	toggleLikeFn  func(id, userID string) (*dto.LikeResult, error)

	lastPatch  dto.BlogPatch
	lastUpload *dto.FileUpload
}

func (f *fakeBlogService) Create(_ context.Context, authorID, title, content string, media *dto.FileUpload) (*model.Blog, error) {
	f.lastUpload = media

	return f.createFn(authorID, title, content, media)
}

func (f *fakeBlogService) GetAll(_ context.Context) ([]model.Blog, error) {
	return f.getAllFn()
}

func (f *fakeBlogService) GetByID(_ context.Context, id string) (*model.Blog, error) {
	return f.getByIDFn(id)
}

func (f *fakeBlogService) Update(_ context.Context, id, requesterID string, patch dto.BlogPatch) (*model.Blog, error) {
	f.lastPatch = patch

	return f.updateFn(id, requesterID, patch)
}

func (f *fakeBlogService) Delete(_ context.Context, id, requesterID string) error {
	return f.deleteFn(id, requesterID)
}

func (f *fakeBlogService) GetByAuthor(_ context.Context, authorID string) (*dto.AuthorFeed, error) {
	return f.getByAuthorFn(authorID)
}

func (f *fakeBlogService) ToggleLike(_ context.Context, id, userID string) (*dto.LikeResult, error) {
	return f.toggleLikeFn(id, userID)
}
