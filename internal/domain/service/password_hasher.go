// Package service defines interfaces for stateless domain services.
package service

// PasswordHasher abstracts one-way salted credential hashing.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether plaintext matches hash. A mismatch is not
	// an error condition.
	Check(password, hash string) bool
}
