package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepository handles persistence for activities in PostgreSQL.
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository constructs an ActivityRepository.
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Seed inserts the catalog when the activities table is empty.
func (r *ActivityRepository) Seed(ctx context.Context, catalog model.Catalog) error {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&n); err != nil {
		return fmt.Errorf("count activities: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, a := range catalog {
		_, err = tx.Exec(ctx,
			`INSERT INTO activities (name, description, schedule, max_participants, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			a.Name, a.Description, a.Schedule, a.MaxParticipants, i,
		)
		if err != nil {
			return fmt.Errorf("insert activity %q: %w", a.Name, err)
		}
		for _, email := range a.Participants {
			_, err = tx.Exec(ctx,
				`INSERT INTO registrations (id, activity_name, user_email, created_at)
				 VALUES ($1, $2, $3, $4)`,
				uuid.New().String(), a.Name, email, time.Now().UTC(),
			)
			if err != nil {
				return fmt.Errorf("insert participant %q: %w", email, err)
			}
		}
	}
	return tx.Commit(ctx)
}

// List returns every activity in catalog order with participants in signup
// order.
func (r *ActivityRepository) List(ctx context.Context) (model.Catalog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, description, schedule, max_participants
		 FROM activities
		 ORDER BY position, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	catalog := model.Catalog{}
	index := map[string]int{}
	for rows.Next() {
		a := model.Activity{Participants: []string{}}
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		index[a.Name] = len(catalog)
		catalog = append(catalog, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	regs, err := r.db.Query(ctx,
		`SELECT activity_name, user_email FROM registrations ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer regs.Close()

	for regs.Next() {
		var name, email string
		if err := regs.Scan(&name, &email); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		if i, ok := index[name]; ok {
			catalog[i].Participants = append(catalog[i].Participants, email)
		}
	}
	return catalog, regs.Err()
}

// Signup adds email to the activity inside a transaction that holds a row
// lock on the activity.
//
// SELECT … FOR UPDATE blocks concurrent signups for the same activity until
// this transaction commits, so two requests cannot both see the last free
// seat and overfill the activity.
func (r *ActivityRepository) Signup(ctx context.Context, activity, email string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// ── Step 1: lock the activity row. ────────────────────────────────────
	var capacity int
	err = tx.QueryRow(ctx,
		`SELECT max_participants FROM activities WHERE name = $1 FOR UPDATE`,
		activity,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrNotFound
			return err
		}
		return fmt.Errorf("lock activity row: %w", err)
	}

	// ── Step 2: duplicate and capacity checks. ────────────────────────────
	var count, dup int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE user_email = $2)
		 FROM registrations WHERE activity_name = $1`,
		activity, email,
	).Scan(&count, &dup)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if dup > 0 {
		err = ErrAlreadyRegistered
		return err
	}
	if count >= capacity {
		err = ErrActivityFull
		return err
	}

	// ── Step 3: record the registration. ──────────────────────────────────
	_, err = tx.Exec(ctx,
		`INSERT INTO registrations (id, activity_name, user_email, created_at)
		 VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), activity, email, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Unregister removes email from the activity.
func (r *ActivityRepository) Unregister(ctx context.Context, activity, email string) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM activities WHERE name = $1)`,
		activity,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check activity: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM registrations WHERE activity_name = $1 AND user_email = $2`,
		activity, email,
	)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotRegistered
	}
	return nil
}
