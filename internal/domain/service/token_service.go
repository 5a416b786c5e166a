package service

// TokenService issues and verifies signed, time-bounded identity tokens.
type TokenService interface {
	// Issue creates a signed token encoding userID with the configured
	// expiry.
	Issue(userID string) (string, error)

	// Verify returns the userID carried by a valid token. Bad signature
	// and expiry produce the same Unauthorized error so callers cannot
	// tell the two apart.
	Verify(token string) (string, error)
}
