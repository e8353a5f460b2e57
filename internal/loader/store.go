package loader

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Ricardo-TDP/ruleta/internal/wheel"
)

const schema = `
CREATE TABLE IF NOT EXISTS option (
    position     INTEGER PRIMARY KEY,
    label        TEXT NOT NULL,
    display_text TEXT NOT NULL DEFAULT '',
    color        TEXT NOT NULL DEFAULT ''
);
`

// Store is a sqlite-backed option set. It holds exactly one wheel's
// options; Import replaces the whole set, mirroring the wholesale-replace
// semantics of wheel.Model.Load.
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create options schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Import atomically replaces the stored option set. An empty set is
// rejected before anything is deleted, so a bad import never leaves the
// store empty.
func (s *Store) Import(ctx context.Context, opts []wheel.Option) error {
	if len(opts) == 0 {
		return wheel.ErrEmptyOptionSet
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM option`); err != nil {
		return fmt.Errorf("failed to clear options: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO option (position, label, display_text, color) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, opt := range opts {
		if _, err := stmt.ExecContext(ctx, i, opt.Label, opt.DisplayText, opt.Color); err != nil {
			return fmt.Errorf("failed to insert option %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// List returns the stored options in position order. An empty store fails
// with wheel.ErrEmptyOptionSet.
func (s *Store) List(ctx context.Context) ([]wheel.Option, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label, display_text, color FROM option ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var opts []wheel.Option
	for rows.Next() {
		var opt wheel.Option
		if err := rows.Scan(&opt.Label, &opt.DisplayText, &opt.Color); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		opts = append(opts, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	if len(opts) == 0 {
		return nil, wheel.ErrEmptyOptionSet
	}
	return opts, nil
}
