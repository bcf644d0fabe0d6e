package portalsdk

import (
	"context"
	"sync"
)

// CredentialStore persists the signed-in profile between runs. Load returns
// (nil, nil) when nothing is stored and an error when the stored content
// does not decode; NewSession responds to that error by clearing the store.
type CredentialStore interface {
	Load() (*User, error)
	Save(User) error
	Clear() error
}

// MemoryStore keeps the profile in memory only. Zero value is ready to use.
type MemoryStore struct {
	mu   sync.Mutex
	user *User
}

func (m *MemoryStore) Load() (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

func (m *MemoryStore) Save(u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &u
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	return nil
}

// Session wraps an SDKClient with a persisted signed-in user. On creation it
// restores the previous profile from the store; anything the store cannot
// load cleanly is discarded and the session starts signed out.
type Session struct {
	client *SDKClient
	store  CredentialStore

	mu   sync.RWMutex
	user *User
}

// NewSession creates a session backed by store. A nil store falls back to an
// in-memory one.
func NewSession(client *SDKClient, store CredentialStore) *Session {
	if store == nil {
		store = &MemoryStore{}
	}

	s := &Session{client: client, store: store}
	user, err := store.Load()
	if err != nil || (user != nil && user.ID == "") {
		_ = store.Clear()
		user = nil
	}
	s.user = user
	return s
}

// Client exposes the underlying SDKClient for calls beyond the session
// helpers.
func (s *Session) Client() *SDKClient { return s.client }

// Login authenticates and persists the returned profile.
func (s *Session) Login(ctx context.Context, email, password string) (User, error) {
	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if err := s.store.Save(user); err != nil {
		return user, err
	}
	return user, nil
}

// Logout ends the server session and forgets the stored profile. The local
// state is cleared even when the server call fails.
func (s *Session) Logout(ctx context.Context) error {
	err := s.client.Logout(ctx)

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	_ = s.store.Clear()

	return err
}

// Refresh re-fetches the profile from the server and updates the store. Use
// it after UpdateProfile or to validate a restored session.
func (s *Session) Refresh(ctx context.Context) (User, error) {
	user, err := s.client.Me(ctx)
	if err != nil {
		if IsCode(err, CodeUnauthorized) {
			s.mu.Lock()
			s.user = nil
			s.mu.Unlock()
			_ = s.store.Clear()
		}
		return User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	_ = s.store.Save(user)
	return user, nil
}

// Current returns the locally known profile, if signed in.
func (s *Session) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a profile is held locally. It does not
// consult the server; use Refresh for that.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}
