package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Shivanand-hulikatti/activity-board/internal/model"
	"github.com/google/uuid"
)

// SQLiteRepository persists activities in a SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository constructs a SQLiteRepository over an opened handle.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Close closes the SQLite handle.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Seed inserts the catalog when the activities table is empty.
func (r *SQLiteRepository) Seed(ctx context.Context, catalog model.Catalog) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`).Scan(&n); err != nil {
		return fmt.Errorf("count activities: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, a := range catalog {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO activities (name, description, schedule, max_participants, position)
			 VALUES (?, ?, ?, ?, ?)`,
			a.Name, a.Description, a.Schedule, a.MaxParticipants, i,
		)
		if err != nil {
			return fmt.Errorf("insert activity %q: %w", a.Name, err)
		}
		for _, email := range a.Participants {
			if err := insertRegistration(ctx, tx, a.Name, email); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// List returns every activity in catalog order with participants in signup
// order.
func (r *SQLiteRepository) List(ctx context.Context) (model.Catalog, error) {
	rows, err := r.db.QueryContext(ctx,
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
	// One connection: the first result set must be closed before the next
	// query can run.
	rows.Close()

	regs, err := r.db.QueryContext(ctx,
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

// Signup adds email to the activity. The connection opens transactions with
// BEGIN IMMEDIATE, so the write lock is held from the first read.
func (r *SQLiteRepository) Signup(ctx context.Context, activity, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var capacity int
	err = tx.QueryRowContext(ctx,
		`SELECT max_participants FROM activities WHERE name = ?`,
		activity,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("read activity: %w", err)
	}

	var count, dup int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(user_email = ?), 0)
		 FROM registrations WHERE activity_name = ?`,
		email, activity,
	).Scan(&count, &dup)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if dup > 0 {
		return ErrAlreadyRegistered
	}
	if count >= capacity {
		return ErrActivityFull
	}

	if err := insertRegistration(ctx, tx, activity, email); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Unregister removes email from the activity.
func (r *SQLiteRepository) Unregister(ctx context.Context, activity, email string) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activities WHERE name = ?`,
		activity,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check activity: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM registrations WHERE activity_name = ? AND user_email = ?`,
		activity, email,
	)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if n == 0 {
		return ErrNotRegistered
	}
	return nil
}

func insertRegistration(ctx context.Context, tx *sql.Tx, activity, email string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO registrations (id, activity_name, user_email, created_at)
		 VALUES (?, ?, ?, ?)`,
		uuid.New().String(), activity, email, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}
