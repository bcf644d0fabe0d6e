package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitByIP_BlocksAfterBurst(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := Chain(okHandler(), RateLimitByIP(cfg))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = ip + ":54321"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1"))
	require.Equal(t, http.StatusOK, do("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))

	// A different client is unaffected.
	require.Equal(t, http.StatusOK, do("10.0.0.2"))
}

func TestRateLimit_SetsRetryHeaders(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := Chain(okHandler(), RateLimitByIP(cfg))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_ForwardedForTakesPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	require.Equal(t, "203.0.113.7", IPKeyExtractor(req))
}

func TestRateLimitByUser_FallsBackToIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	extract := CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor)
	require.Equal(t, "10.0.0.1", extract(req))

	req = req.WithContext(ContextWithUserID(req.Context(), "01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV:10.0.0.1", extract(req))
}
