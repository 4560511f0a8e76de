package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
	"github.com/Shivanand-hulikatti/activity-board/internal/repository"
)

type failingStore struct {
	err error
}

func (f failingStore) List(context.Context) (model.Catalog, error)   { return nil, f.err }
func (f failingStore) Signup(context.Context, string, string) error     { return f.err }
func (f failingStore) Unregister(context.Context, string, string) error { return f.err }

func newSeeded(t *testing.T) *ActivityService {
	t.Helper()
	repo := repository.NewMemoryRepository()
	if err := repo.Seed(context.Background(), repository.SeedCatalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewActivityService(repo)
}

func TestSignupMessage(t *testing.T) {
	svc := newSeeded(t)

	msg, err := svc.Signup(context.Background(), "Chess Club", "  newstudent@mergington.edu ")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if !strings.Contains(msg, "newstudent@mergington.edu") || !strings.Contains(msg, "Chess Club") {
		t.Fatalf("expected message to name email and activity, got %q", msg)
	}

	catalog, _ := svc.ListActivities(context.Background())
	chess, _ := catalog.Find("Chess Club")
	if !chess.Has("newstudent@mergington.edu") {
		t.Fatalf("expected trimmed email stored, got %v", chess.Participants)
	}
}

func TestUnregisterMessage(t *testing.T) {
	svc := newSeeded(t)

	msg, err := svc.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	if err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if !strings.Contains(msg, "michael@mergington.edu") || !strings.Contains(msg, "Chess Club") {
		t.Fatalf("expected message to name email and activity, got %q", msg)
	}
}

func TestEmailRequired(t *testing.T) {
	svc := newSeeded(t)

	if _, err := svc.Signup(context.Background(), "Chess Club", "   "); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("signup: expected ErrEmailRequired, got %v", err)
	}
	if _, err := svc.Unregister(context.Background(), "Chess Club", ""); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("unregister: expected ErrEmailRequired, got %v", err)
	}
}

func TestErrorWrapping(t *testing.T) {
	boom := errors.New("disk on fire")

	tests := []struct {
		name       string
		storeErr   error
		wantPrefix string
	}{
		{name: "domain error passes through", storeErr: repository.ErrNotFound, wantPrefix: "activity not found"},
		{name: "unexpected error is wrapped", storeErr: boom, wantPrefix: "signup: "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewActivityService(failingStore{err: tc.storeErr})
			_, err := svc.Signup(context.Background(), "Chess Club", "a@b.edu")
			if !errors.Is(err, tc.storeErr) {
				t.Fatalf("expected %v in chain, got %v", tc.storeErr, err)
			}
			if !strings.HasPrefix(err.Error(), tc.wantPrefix) {
				t.Fatalf("expected prefix %q, got %q", tc.wantPrefix, err.Error())
			}
		})
	}
}
