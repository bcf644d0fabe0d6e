package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/midas-agency/midas/internal/web/domain"
	"github.com/midas-agency/midas/internal/web/store"
	"github.com/midas-agency/midas/pkg/cryptox"
	"github.com/midas-agency/midas/pkg/idx"
	"github.com/midas-agency/midas/pkg/slogx"
)

// AuthService implements account registration, credential verification and
// profile management on top of a Store. All emails are normalised (trimmed,
// lowercased) before touching the backend so lookups stay case-insensitive.
type AuthService struct {
	Store store.Store
}

func NewAuthService(s store.Store) *AuthService {
	return &AuthService{Store: s}
}

// RegisterInput carries the raw, unvalidated registration form.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Company  string
	Phone    string
}

// Register validates the input, hashes the password and creates an active
// account. The email pre-check is advisory only: a failure there is logged
// and registration proceeds, leaving the store's unique constraint as the
// authoritative duplicate guard.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.PublicUser, error) {
	log := slogx.FromContext(ctx)

	fullName := strings.TrimSpace(in.FullName)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if fullName == "" {
		return domain.PublicUser{}, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if !ValidateEmail(email) {
		return domain.PublicUser{}, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if ok, reason := ValidatePassword(in.Password); !ok {
		return domain.PublicUser{}, fmt.Errorf("%w: %s", ErrInvalidInput, reason)
	}

	if _, err := s.Store.Users().GetByEmail(ctx, email, false); err == nil {
		return domain.PublicUser{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		log.WarnContext(ctx, "email pre-check failed, continuing with insert", "error", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Company:      strings.TrimSpace(in.Company),
		Phone:        strings.TrimSpace(in.Phone),
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.Store.Users().Create(ctx, user)
	if err != nil {
		return domain.PublicUser{}, mapStoreErr(err)
	}

	log.InfoContext(ctx, "account registered", "user_id", created.ID)
	return created.Public(), nil
}

// Login verifies the credentials against the active account for email.
// Every authentication failure, missing account, inactive account or wrong
// password alike, returns ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.PublicUser, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if !ValidateEmail(email) || password == "" {
		return domain.PublicUser{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.Store.Users().GetByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrInvalidCredentials
		}
		return domain.PublicUser{}, mapStoreErr(err)
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		return domain.PublicUser{}, ErrInvalidCredentials
	}

	// Best effort: a failed timestamp write must not fail the login.
	if err := s.Store.Users().TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		log.WarnContext(ctx, "failed to record last login", "user_id", user.ID, "error", err)
	}

	log.InfoContext(ctx, "login succeeded", "user_id", user.ID)
	return user.Public(), nil
}

// GetUserByID fetches the active account with the given id. Missing and
// non-active accounts both return ErrUserNotFound.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (domain.PublicUser, error) {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrUserNotFound
		}
		return domain.PublicUser{}, mapStoreErr(err)
	}
	if user.Status != domain.StatusActive {
		return domain.PublicUser{}, ErrUserNotFound
	}
	return user.Public(), nil
}

// ProfileUpdate carries the optional profile fields. Nil means "leave
// unchanged"; a pointer to an empty string clears the field where allowed.
type ProfileUpdate struct {
	FullName *string
	Email    *string
	Password *string
	Company  *string
	Phone    *string
}

// UpdateProfile applies a partial update to the account with the given id.
// Provided fields are validated with the same rules as registration.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (domain.PublicUser, error) {
	patch := store.UserPatch{UpdatedAt: time.Now().UTC()}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return domain.PublicUser{}, fmt.Errorf("%w: full name cannot be empty", ErrInvalidInput)
		}
		patch.FullName = &name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !ValidateEmail(email) {
			return domain.PublicUser{}, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
		}
		patch.Email = &email
	}
	if in.Password != nil {
		if ok, reason := ValidatePassword(*in.Password); !ok {
			return domain.PublicUser{}, fmt.Errorf("%w: %s", ErrInvalidInput, reason)
		}
		hash, err := cryptox.HashPassword(*in.Password)
		if err != nil {
			return domain.PublicUser{}, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}
	if in.Company != nil {
		company := strings.TrimSpace(*in.Company)
		patch.Company = &company
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		patch.Phone = &phone
	}

	updated, err := s.Store.Users().Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrUserNotFound
		}
		return domain.PublicUser{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).InfoContext(ctx, "profile updated", "user_id", id)
	return updated.Public(), nil
}

// mapStoreErr translates store sentinels into the service taxonomy. Anything
// unrecognised becomes a StoreError carrying the original cause.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		return ErrEmailAlreadyExists
	case errors.Is(err, store.ErrSchemaMissing):
		return ErrSchemaNotProvisioned
	case errors.Is(err, store.ErrPermissionDenied):
		return ErrAccessDenied
	default:
		return &StoreError{Err: err}
	}
}
