package dto

import "time"

// UserProfile is the public view of an account. CreatedAt is only
// populated on the profile endpoint, matching the original API.
type UserProfile struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
