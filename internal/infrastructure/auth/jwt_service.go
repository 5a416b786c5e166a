package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"devblog/internal/domain/errs"
	"devblog/internal/domain/service"
)

// jwtService signs and verifies HS256 identity tokens.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService builds the token service. An empty secret is a
// construction error; callers treat it as fatal at startup.
func NewJWTService(secret string, ttl time.Duration) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

func (s *jwtService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify returns the userID carried by tokenString. Every failure mode,
// bad signature and expiry included, collapses into one Unauthorized
// error so callers cannot distinguish them.
func (s *jwtService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errs.New(errs.Unauthorized, "Invalid or expired token.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.New(errs.Unauthorized, "Invalid or expired token.")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errs.New(errs.Unauthorized, "Invalid or expired token.")
	}

	return sub, nil
}
