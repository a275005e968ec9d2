package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vidstream/account-system/internal/core/domain"
)

type stubActivityRepo struct {
	inserted []domain.Activity
	err      error
}

func (r *stubActivityRepo) Insert(_ context.Context, activity *domain.Activity) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, *activity)
	return nil
}

func TestActivityService_Record(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo)

	activity := domain.Activity{
		Kind:      domain.ActivityLogin,
		UserID:    "1",
		Email:     "alice@x.com",
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Record(context.Background(), activity); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Kind != domain.ActivityLogin {
		t.Fatalf("unexpected inserted records: %+v", repo.inserted)
	}
}

func TestActivityService_Record_MissingKind(t *testing.T) {
	svc := NewActivityService(&stubActivityRepo{})

	if err := svc.Record(context.Background(), domain.Activity{Email: "a@x.com"}); err == nil {
		t.Fatalf("expected error for missing kind")
	}
}

func TestActivityService_Record_InsertFailure(t *testing.T) {
	repo := &stubActivityRepo{err: errors.New("down")}
	svc := NewActivityService(repo)

	err := svc.Record(context.Background(), domain.Activity{Kind: domain.ActivitySignup, Email: "a@x.com"})
	if err == nil {
		t.Fatalf("expected error when insert fails")
	}
}
