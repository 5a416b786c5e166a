// Package auth provides the concrete credential and token services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"devblog/internal/domain/service"
)

// hashCost is the fixed bcrypt cost factor used for all credentials.
const hashCost = 10

type bcryptHasher struct{}

// NewBcryptHasher returns the bcrypt-backed PasswordHasher.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{}
}

// Hash generates a salted hash from a plaintext password. bcrypt handles
// salt generation itself.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)

	return string(bytes), err
}

// Check compares a plaintext password with a stored hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
