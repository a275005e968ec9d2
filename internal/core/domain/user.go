package domain

import (
	"errors"
	"time"
)

// Sentinel errors for the auth flow. Handlers map these to HTTP statuses;
// anything else is treated as an internal error.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailExists        = errors.New("email already exists")
	ErrUsernameExists     = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User models an account holder. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public returns a copy safe for API responses. The hash is already hidden
// from JSON; this additionally clears it so callers can hand the value around
// without carrying the credential.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
