package store

import (
	"context"
	"time"

	"github.com/midas-agency/midas/internal/web/domain"
)

// Unavailable is the driver selected when no backend is configured. Every
// operation fails with ErrUnavailable so the site still serves its marketing
// pages while the portal surfaces a clear configuration error instead of the
// old habit of swapping in an object that mimicked the real client.
type Unavailable struct{}

var _ Store = Unavailable{}

func (Unavailable) Users() Users               { return unavailableUsers{} }
func (Unavailable) Ping(context.Context) error { return ErrUnavailable }
func (Unavailable) Close() error               { return nil }

type unavailableUsers struct{}

func (unavailableUsers) GetByEmail(context.Context, string, bool) (domain.User, error) {
	return domain.User{}, ErrUnavailable
}

func (unavailableUsers) GetByID(context.Context, string) (domain.User, error) {
	return domain.User{}, ErrUnavailable
}

func (unavailableUsers) Create(context.Context, domain.User) (domain.User, error) {
	return domain.User{}, ErrUnavailable
}

func (unavailableUsers) Update(context.Context, string, UserPatch) (domain.User, error) {
	return domain.User{}, ErrUnavailable
}

func (unavailableUsers) TouchLastLogin(context.Context, string, time.Time) error {
	return ErrUnavailable
}
