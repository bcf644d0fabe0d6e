// Package store defines the data access boundary for the user table. The
// concrete drivers (postgrest, sqlite) normalise their backend's failure
// modes onto the sentinel errors here so the service layer never inspects
// backend-specific codes.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/midas-agency/midas/internal/web/domain"
)

var (
	// ErrNotFound reports an absent row.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateKey reports a unique-constraint violation. The email
	// constraint on Mida_Login is the real guard against concurrent
	// duplicate registration; the service's pre-check is advisory only.
	ErrDuplicateKey = errors.New("store: duplicate key")

	// ErrSchemaMissing reports that the backing table does not exist. This is
	// an operational problem (unprovisioned backend), not a user error.
	ErrSchemaMissing = errors.New("store: schema not provisioned")

	// ErrPermissionDenied reports a backend permission failure, e.g. a
	// row-level-security policy rejecting the configured key.
	ErrPermissionDenied = errors.New("store: permission denied")

	// ErrUnavailable reports that no backend is configured at all.
	ErrUnavailable = errors.New("store: backend not configured")
)

// Store is the root data access interface implemented by the drivers.
type Store interface {
	Users() Users

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// Users is row-level access to the Mida_Login table.
type Users interface {
	// GetByEmail returns the user with the given (already lowercased) email.
	// With activeOnly set, rows whose status is not "active" are reported as
	// ErrNotFound, which is what keeps the login failure undifferentiated.
	GetByEmail(ctx context.Context, email string, activeOnly bool) (domain.User, error)

	// GetByID returns a user by id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// Create inserts the row as given (id is assigned by the app via ULID)
	// and returns the stored row.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// Update applies the non-nil fields of patch and returns the updated row.
	Update(ctx context.Context, id string, patch UserPatch) (domain.User, error)

	// TouchLastLogin sets last_login and updated_at. Callers treat failures
	// as best-effort.
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// UserPatch is a partial update of a user row. Nil fields are left untouched.
type UserPatch struct {
	FullName     *string
	Email        *string
	PasswordHash *string
	Company      *string
	Phone        *string
	UpdatedAt    time.Time
}
