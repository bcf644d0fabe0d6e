package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midas-agency/midas/pkg/portalsdk"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	srv := newTestServer(t, nil)
	sdk := portalsdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	created := registerAccount(t, sdk, "Jane@Example.com")
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, "active", created.Status)

	// Registration issued a session cookie; /v1/me works immediately.
	me, err := sdk.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, me.ID)

	require.NoError(t, sdk.Logout(ctx))
	_, err = sdk.Me(ctx)
	require.Error(t, err)

	signedIn, err := sdk.Login(ctx, "jane@example.com", "Sunter3a")
	require.NoError(t, err)
	assert.Equal(t, created.ID, signedIn.ID)

	// The login timestamp lands after the credential check; a fresh read
	// sees it.
	me, err = sdk.Me(ctx)
	require.NoError(t, err)
	require.NotNil(t, me.LastLogin)
}

func TestRegister_ResponseOmitsPassword(t *testing.T) {
	srv := newTestServer(t, nil)

	body, _ := json.Marshal(portalsdk.RegisterRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "Secret123",
	})
	resp, err := http.Post(srv.URL+"/v1/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.NotContains(t, raw, "password")
	assert.Equal(t, "jane@example.com", raw["email"])
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	srv := newTestServer(t, nil)
	sdk := portalsdk.NewSDKClient(srv.URL)

	registerAccount(t, sdk, "taken@example.com")

	_, err := portalsdk.NewSDKClient(srv.URL).Register(context.Background(), portalsdk.RegisterRequest{
		FullName: "Second",
		Email:    "Taken@Example.com",
		Password: "Sunter3a",
	})
	require.Error(t, err)
	assert.True(t, portalsdk.IsCode(err, portalsdk.CodeEmailExists))

	var apiErr *portalsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestRegister_ValidationRejected(t *testing.T) {
	srv := newTestServer(t, nil)
	sdk := portalsdk.NewSDKClient(srv.URL)

	_, err := sdk.Register(context.Background(), portalsdk.RegisterRequest{
		FullName: "Jane",
		Email:    "not-an-email",
		Password: "Sunter3a",
	})
	require.Error(t, err)
	assert.True(t, portalsdk.IsCode(err, portalsdk.CodeInvalidInput))
}

// Wrong password and unknown account must be indistinguishable on the wire.
func TestLogin_UndifferentiatedFailure(t *testing.T) {
	srv := newTestServer(t, nil)
	registerAccount(t, portalsdk.NewSDKClient(srv.URL), "jane@example.com")

	attempt := func(email, password string) *portalsdk.APIError {
		_, err := portalsdk.NewSDKClient(srv.URL).Login(context.Background(), email, password)
		require.Error(t, err)
		var apiErr *portalsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		return apiErr
	}

	wrongPassword := attempt("jane@example.com", "WrongPass1")
	unknownEmail := attempt("nobody@example.com", "Sunter3a")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Status)
	assert.Equal(t, *wrongPassword, *unknownEmail)
}

func TestLogin_RateLimited(t *testing.T) {
	srv := newTestServer(t, nil)

	body, _ := json.Marshal(portalsdk.LoginRequest{Email: "jane@example.com", Password: "WrongPass1"})

	var last *http.Response
	for range httpxStrictBurst() + 1 {
		resp, err := http.Post(srv.URL+"/v1/auth/login", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		last = resp
	}

	require.Equal(t, http.StatusTooManyRequests, last.StatusCode)
	assert.NotEmpty(t, last.Header.Get("Retry-After"))
}

func TestLogout_WithoutSession(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/v1/auth/logout", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
