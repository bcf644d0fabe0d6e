package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/midas-agency/midas/internal/web/domain"
	"github.com/midas-agency/midas/internal/web/store"
	"github.com/midas-agency/midas/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s *Store, email string, status string) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	u, err := s.Users().Create(context.Background(), domain.User{
		ID:           idx.New().String(),
		FullName:     "Jane Doe",
		Email:        email,
		PasswordHash: "$2a$12$fakehash",
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return u
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, s, "jane@example.com", domain.StatusActive)
	require.Empty(t, created.Company)
	require.Nil(t, created.LastLogin)

	byID, err := s.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, byID.Email)

	byEmail, err := s.Users().GetByEmail(ctx, "jane@example.com", true)
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "jane@example.com", domain.StatusActive)

	now := time.Now().UTC()
	_, err := s.Users().Create(context.Background(), domain.User{
		ID:           idx.New().String(),
		FullName:     "Other Jane",
		Email:        "jane@example.com",
		PasswordHash: "$2a$12$otherhash",
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.ErrorIs(t, err, store.ErrDuplicateKey)
}

func TestGetByEmail_ActiveOnlySkipsInactive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "inactive@example.com", domain.StatusInactive)

	_, err := s.Users().GetByEmail(ctx, "inactive@example.com", true)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Without the filter the row is visible.
	u, err := s.Users().GetByEmail(ctx, "inactive@example.com", false)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInactive, u.Status)
}

func TestUpdate_PartialPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, s, "jane@example.com", domain.StatusActive)

	company := "MIDAS Agency"
	updated, err := s.Users().Update(ctx, created.ID, store.UserPatch{
		Company:   &company,
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, "MIDAS Agency", updated.Company)
	require.Equal(t, created.FullName, updated.FullName, "unset fields stay untouched")

	// Clearing a field stores NULL, which reads back as empty.
	empty := ""
	updated, err = s.Users().Update(ctx, created.ID, store.UserPatch{
		Company:   &empty,
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Empty(t, updated.Company)
}

func TestUpdate_MissingRow(t *testing.T) {
	s := newTestStore(t)

	name := "Nobody"
	_, err := s.Users().Update(context.Background(), idx.New().String(), store.UserPatch{
		FullName:  &name,
		UpdatedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdate_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "first@example.com", domain.StatusActive)
	second := seedUser(t, s, "second@example.com", domain.StatusActive)

	taken := "first@example.com"
	_, err := s.Users().Update(context.Background(), second.ID, store.UserPatch{
		Email:     &taken,
		UpdatedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, store.ErrDuplicateKey)
}

func TestTouchLastLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, s, "jane@example.com", domain.StatusActive)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.Users().TouchLastLogin(ctx, created.ID, at))

	u, err := s.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, u.LastLogin)
	require.WithinDuration(t, at, *u.LastLogin, time.Second)
}

func TestMissingTableMapsToSchemaMissing(t *testing.T) {
	s, err := NewStore("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// No migrations applied.
	_, err = s.Users().GetByEmail(context.Background(), "jane@example.com", true)
	require.ErrorIs(t, err, store.ErrSchemaMissing)
}
