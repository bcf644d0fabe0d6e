// Package session keeps the signed-in user in a browser cookie. The cookie
// carries the public profile as base64 JSON; anything that fails to decode is
// treated as no session and cleared on the next response.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/midas-agency/midas/internal/web/domain"
)

// CookieName is the session cookie issued after login.
const CookieName = "midas_user"

// DefaultTTL bounds how long an issued session cookie lives.
const DefaultTTL = 7 * 24 * time.Hour

// ErrNoSession: no cookie, or a cookie that does not decode to a profile.
var ErrNoSession = errors.New("no session")

type Manager struct {
	// Secure marks issued cookies HTTPS-only. Off for local development.
	Secure bool
	TTL    time.Duration
}

func NewManager(secure bool) *Manager {
	return &Manager{Secure: secure, TTL: DefaultTTL}
}

// Issue writes the session cookie for user onto the response.
func (m *Manager) Issue(w http.ResponseWriter, user domain.PublicUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   int(m.ttl().Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read decodes the session cookie from the request. A missing, empty or
// corrupt cookie returns ErrNoSession.
func (m *Manager) Read(r *http.Request) (domain.PublicUser, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return domain.PublicUser{}, ErrNoSession
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return domain.PublicUser{}, ErrNoSession
	}

	var user domain.PublicUser
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		return domain.PublicUser{}, ErrNoSession
	}
	return user, nil
}

func (m *Manager) ttl() time.Duration {
	if m.TTL > 0 {
		return m.TTL
	}
	return DefaultTTL
}
