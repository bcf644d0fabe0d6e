package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's id. The session layer sets it
// and rate limiting / handlers read it.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user id, or false when
// anonymous.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}

// ContextWithUserID attaches an authenticated user id to ctx.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
