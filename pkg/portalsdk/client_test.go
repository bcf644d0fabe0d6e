package portalsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_DecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Error:            CodeInvalidCredentials,
			ErrorDescription: "Invalid email or password",
		})
	}))
	defer srv.Close()

	_, err := NewSDKClient(srv.URL).Login(context.Background(), "a@b.co", "WrongPass1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, CodeInvalidCredentials, apiErr.Code)
	assert.True(t, IsCode(err, CodeInvalidCredentials))
	assert.False(t, IsCode(err, CodeEmailExists))
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewSDKClient(srv.URL).Me(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "502")
}

// The session cookie issued at login must be replayed on later requests.
func TestClient_ReplaysSessionCookie(t *testing.T) {
	user := User{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Email: "a@b.co", Status: "active"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "midas_user", Value: "session-value", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("GET /v1/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("midas_user")
		if err != nil || cookie.Value != "session-value" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(user)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	_, err := client.Login(context.Background(), "a@b.co", "Sunter3a")
	require.NoError(t, err)

	me, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)
}
