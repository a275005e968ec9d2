package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidstream/account-system/internal/core/domain"
	"github.com/vidstream/account-system/internal/core/ports"
)

// AuthService implements signup, login and session verification over the
// credential store. Tokens are stateless HS256 JWTs carrying the user id;
// signout therefore has no service-level counterpart.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Signup creates a new account and mints a session token for it.
// Email uniqueness is checked before username uniqueness, so a request
// conflicting on both reports the email conflict.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", domain.ErrMissingFields
	}

	existing, err := s.repo.FindByEmailOrUsername(ctx, email, username)
	if err != nil && err != domain.ErrUserNotFound {
		return nil, "", err
	}
	if existing != nil {
		if existing.Email == email {
			return nil, "", domain.ErrEmailExists
		}
		return nil, "", domain.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(created.ID)
	if err != nil {
		return nil, "", err
	}
	return created.Public(), token, nil
}

// Login authenticates by email and returns a minimal user projection plus a
// fresh token. An unknown email and a wrong password are distinct outcomes.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	projection := &domain.User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	return projection, token, nil
}

// CheckAuth resolves an already-verified user id back to its account.
// Token verification itself happens in the auth middleware.
func (s *AuthService) CheckAuth(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// Users returns every account without credentials.
func (s *AuthService) Users(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListAll(ctx)
}

func (s *AuthService) generateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
