package session

import (
	"context"
	"net/http"

	"github.com/midas-agency/midas/internal/web/domain"
	"github.com/midas-agency/midas/pkg/httpx"
)

type ctxKey string

const ctxKeyUser ctxKey = "session_user"

// UserFromContext returns the session user placed by Authenticate.
func UserFromContext(ctx context.Context) (domain.PublicUser, bool) {
	user, ok := ctx.Value(ctxKeyUser).(domain.PublicUser)
	return user, ok
}

// ContextWithUser is exported for handler tests.
func ContextWithUser(ctx context.Context, user domain.PublicUser) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUser, user)
	return httpx.ContextWithUserID(ctx, user.ID)
}

// Authenticate resolves the session cookie and, when valid, attaches the user
// to the request context. A cookie that fails to decode is expired on the
// response and the request continues unauthenticated.
func (m *Manager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.Read(r)
		if err != nil {
			if _, cookieErr := r.Cookie(CookieName); cookieErr == nil {
				m.Clear(w)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// RequireUser rejects requests that carry no authenticated user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			httpx.WriteJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "authentication required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
