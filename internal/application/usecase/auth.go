package usecase

import (
	"context"
	"errors"
	"time"

	"devblog/internal/domain/dto"
	"devblog/internal/domain/errs"
	"devblog/internal/domain/model"
	"devblog/internal/domain/repository/database"
	"devblog/internal/domain/service"
)

// Auth composes the password hasher, token service and user directory
// into the register/login/profile flows.
type Auth struct {
	users      database.UserRetriever
	userWriter database.UserWriter
	hasher     service.PasswordHasher
	tokens     service.TokenService
}

func NewAuth(users database.UserRetriever, userWriter database.UserWriter,
	hasher service.PasswordHasher, tokens service.TokenService,
) *Auth {
	return &Auth{
		users:      users,
		userWriter: userWriter,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (a *Auth) Register(ctx context.Context, email, password, name string) (*dto.AuthResult, error) {
	if email == "" || password == "" || name == "" {
		return nil, errs.New(errs.Validation, "Please provide email, password, and name.")
	}

	_, err := a.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, errs.New(errs.Conflict, "User already exists with this email.")
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, errs.Wrap(errs.Upstream, "Registration failed.", err)
	}

	hashed, err := a.hasher.Hash(password)
	if err != nil {
		return nil, errs.Wrap(errs.Upstream, "Registration failed.", err)
	}

	user := &model.User{
		Email:     email,
		Password:  hashed,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	id, err := a.userWriter.Create(ctx, user)
	if err != nil {
		// The unique index backstops the lookup above under races.
		if errors.Is(err, database.ErrDuplicate) {
			return nil, errs.New(errs.Conflict, "User already exists with this email.")
		}

		return nil, errs.Wrap(errs.Upstream, "Registration failed.", err)
	}

	token, err := a.tokens.Issue(id)
	if err != nil {
		return nil, errs.Wrap(errs.Upstream, "Registration failed.", err)
	}

	return &dto.AuthResult{
		Token: token,
		User: dto.UserProfile{
			ID:    id,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (*dto.AuthResult, error) {
	if email == "" || password == "" {
		return nil, errs.New(errs.Validation, "Please provide email and password.")
	}

	// Unknown email and wrong password produce the same error, so a
	// caller can't probe which accounts exist.
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errs.New(errs.Unauthorized, "Invalid credentials")
		}

		return nil, errs.Wrap(errs.Upstream, "Login failed.", err)
	}

	if !a.hasher.Check(password, user.Password) {
		return nil, errs.New(errs.Unauthorized, "Invalid credentials")
	}

	token, err := a.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, errs.Wrap(errs.Upstream, "Login failed.", err)
	}

	return &dto.AuthResult{
		Token: token,
		User: dto.UserProfile{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

func (a *Auth) GetMe(ctx context.Context, userID string) (*dto.UserProfile, error) {
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errs.New(errs.NotFound, "User not found.")
		}

		return nil, errs.Wrap(errs.Upstream, "Failed to get user data.", err)
	}

	createdAt := user.CreatedAt

	return &dto.UserProfile{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: &createdAt,
	}, nil
}
