package handler

import "github.com/vidstream/account-system/internal/core/domain"

// errorResponse is the standard envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// --- Request types ---

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// authResponse is returned by signup and login. User never carries the
// password hash: domain.User hides it from JSON and the service clears it.
type authResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token"`
}

type checkAuthResponse struct {
	User *domain.User `json:"user"`
}

type signoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
