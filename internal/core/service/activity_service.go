package service

import (
	"context"
	"fmt"

	"github.com/vidstream/account-system/internal/core/domain"
	"github.com/vidstream/account-system/internal/core/ports"
)

// ActivityService persists auth activity records. Recording is best-effort:
// callers enqueue and move on, so a failure here must never bubble back into
// the originating request.
type ActivityService struct {
	repo ports.ActivityRepository
}

func NewActivityService(repo ports.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) Record(ctx context.Context, activity domain.Activity) error {
	if activity.Kind == "" {
		return fmt.Errorf("activity record: missing kind")
	}

	if err := s.repo.Insert(ctx, &activity); err != nil {
		return fmt.Errorf("activity record: %w", err)
	}
	return nil
}
