package service

import (
	"errors"
	"fmt"
)

// The closed set of failure reasons the auth operations return. Handlers map
// each one to user-facing copy; nothing else escapes the service boundary.
var (
	// ErrInvalidInput: input failed local validation, no backend call made.
	// Always wrapped with the specific reason.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials: deliberately undifferentiated login failure.
	// Unknown email, wrong password and non-active accounts all collapse
	// into this one reason so responses never leak account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists: registration collision, found either by the
	// advisory pre-check or by the store's unique constraint.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrSchemaNotProvisioned: the user table does not exist. Operational
	// setup problem, not a user error.
	ErrSchemaNotProvisioned = errors.New("user table not provisioned")

	// ErrAccessDenied: the backend rejected the configured credentials.
	ErrAccessDenied = errors.New("backend permission denied")

	// ErrUserNotFound: profile lookups/updates against a missing or
	// non-active account.
	ErrUserNotFound = errors.New("user not found")
)

// StoreError is the catch-all for backend failures that fit none of the
// sentinels above. It keeps the underlying message for operator diagnosis;
// handlers must not show it verbatim to end users.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store failure: %v", e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }
