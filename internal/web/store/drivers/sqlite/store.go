// Package sqlite implements the user store on a local SQLite file. It serves
// self-hosted and development deployments where the managed row-store backend
// is not configured, and backs the integration tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/midas-agency/midas/internal/web/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// NewStore opens the database at dsn, e.g.
// "file:midas.db?_busy_timeout=5000&_journal_mode=WAL".
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Users() store.Users { return &usersRepo{db: s.db} }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error { return s.db.Close() }

// mapErr normalises driver errors onto the store sentinels. modernc/sqlite
// reports constraint and schema problems only through the error text.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return errors.Join(store.ErrDuplicateKey, err)
	case strings.Contains(msg, "no such table"):
		return errors.Join(store.ErrSchemaMissing, err)
	case strings.Contains(msg, "readonly database"):
		return errors.Join(store.ErrPermissionDenied, err)
	}
	return err
}
