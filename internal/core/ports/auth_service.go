package ports

import (
	"context"

	"github.com/vidstream/account-system/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	CheckAuth(ctx context.Context, userID string) (*domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)
}
