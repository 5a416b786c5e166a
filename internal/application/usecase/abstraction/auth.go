package abstraction

import (
	"context"

	"devblog/internal/domain/dto"
)

// Auth is the identity facade: registration, login and profile lookup.
type Auth interface {
	Register(ctx context.Context, email, password, name string) (*dto.AuthResult, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResult, error)
	GetMe(ctx context.Context, userID string) (*dto.UserProfile, error)
}
