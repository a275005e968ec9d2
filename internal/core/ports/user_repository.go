package ports

import (
	"context"

	"github.com/vidstream/account-system/internal/core/domain"
)

// UserRepository defines the persistence contract for the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailOrUsername returns the first user matching either field,
	// or domain.ErrUserNotFound when neither is taken.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)
	// ListAll returns every user. Password hashes are excluded at the
	// storage layer so they never reach a caller.
	ListAll(ctx context.Context) ([]domain.User, error)
}
