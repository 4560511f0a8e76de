// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
	"github.com/Shivanand-hulikatti/activity-board/internal/repository"
)

// ErrEmailRequired is returned when a signup or unregister carries no email.
var ErrEmailRequired = errors.New("email is required")

// ActivityStore is the storage the service needs. The memory, SQLite and
// PostgreSQL repositories all satisfy it.
type ActivityStore interface {
	List(ctx context.Context) (model.Catalog, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// ActivityService orchestrates activity sign-up operations.
type ActivityService struct {
	store ActivityStore
}

// NewActivityService constructs an ActivityService with its store.
func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// ListActivities returns the full catalog.
func (s *ActivityService) ListActivities(ctx context.Context) (model.Catalog, error) {
	catalog, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return catalog, nil
}

// Signup validates the request and adds email to the named activity.
// It returns the confirmation message shown to the user.
func (s *ActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	if err := s.store.Signup(ctx, activity, email); err != nil {
		if isDomainError(err) {
			return "", err
		}
		return "", fmt.Errorf("signup: %w", err)
	}
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity.
func (s *ActivityService) Unregister(ctx context.Context, activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	if err := s.store.Unregister(ctx, activity, email); err != nil {
		if isDomainError(err) {
			return "", err
		}
		return "", fmt.Errorf("unregister: %w", err)
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

// isDomainError reports errors that handlers map to a client status.
func isDomainError(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrActivityFull) ||
		errors.Is(err, repository.ErrAlreadyRegistered) ||
		errors.Is(err, repository.ErrNotRegistered)
}
