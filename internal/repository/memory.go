package repository

import (
	"context"
	"sync"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
)

// MemoryRepository keeps the catalog in process memory. State is lost on
// restart.
type MemoryRepository struct {
	mu      sync.Mutex
	catalog model.Catalog
}

// NewMemoryRepository constructs an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{catalog: model.Catalog{}}
}

// Seed replaces the catalog when the store is empty.
func (r *MemoryRepository) Seed(_ context.Context, catalog model.Catalog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.catalog) == 0 {
		r.catalog = clone(catalog)
	}
	return nil
}

// List returns a copy of the catalog.
func (r *MemoryRepository) List(ctx context.Context) (model.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.catalog), nil
}

// Signup appends email to the activity's participants.
func (r *MemoryRepository) Signup(ctx context.Context, activity, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.catalog.Find(activity)
	if !ok {
		return ErrNotFound
	}
	if a.Has(email) {
		return ErrAlreadyRegistered
	}
	if a.IsFull() {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity's participants.
func (r *MemoryRepository) Unregister(ctx context.Context, activity, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.catalog.Find(activity)
	if !ok {
		return ErrNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}
