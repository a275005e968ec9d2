package ports

import (
	"context"

	"github.com/vidstream/account-system/internal/core/domain"
)

// ActivityRepository persists auth activity records.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}

// ActivityService processes a single activity record end to end.
type ActivityService interface {
	Record(ctx context.Context, activity domain.Activity) error
}
