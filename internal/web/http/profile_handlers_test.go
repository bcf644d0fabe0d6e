package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midas-agency/midas/pkg/portalsdk"
)

func TestMe_RequiresSession(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/v1/me")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	srv := newTestServer(t, nil)
	sdk := portalsdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	created := registerAccount(t, sdk, "rina@example.com")

	company := "PT Emas Baru"
	phone := "+62 812 0000 1111"
	updated, err := sdk.UpdateProfile(ctx, portalsdk.UpdateProfileRequest{
		Company: &company,
		Phone:   &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, company, updated.Company)
	assert.Equal(t, phone, updated.Phone)

	// Untouched fields survive the patch.
	assert.Equal(t, created.FullName, updated.FullName)
	assert.Equal(t, created.Email, updated.Email)

	me, err := sdk.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, company, me.Company)
}

func TestUpdateProfile_PasswordChange(t *testing.T) {
	srv := newTestServer(t, nil)
	sdk := portalsdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	registerAccount(t, sdk, "rina@example.com")

	newPassword := "Kunci4Baru"
	_, err := sdk.UpdateProfile(ctx, portalsdk.UpdateProfileRequest{Password: &newPassword})
	require.NoError(t, err)

	fresh := portalsdk.NewSDKClient(srv.URL)
	_, err = fresh.Login(ctx, "rina@example.com", "Sunter3a")
	require.Error(t, err)
	assert.True(t, portalsdk.IsCode(err, portalsdk.CodeInvalidCredentials))

	_, err = fresh.Login(ctx, "rina@example.com", newPassword)
	require.NoError(t, err)
}

func TestUpdateProfile_InvalidEmail(t *testing.T) {
	srv := newTestServer(t, nil)
	sdk := portalsdk.NewSDKClient(srv.URL)

	registerAccount(t, sdk, "rina@example.com")

	bad := "not-an-email"
	_, err := sdk.UpdateProfile(context.Background(), portalsdk.UpdateProfileRequest{Email: &bad})
	require.Error(t, err)
	assert.True(t, portalsdk.IsCode(err, portalsdk.CodeInvalidInput))
}
