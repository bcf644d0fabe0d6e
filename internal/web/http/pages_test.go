package http

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midas-agency/midas/pkg/portalsdk"
)

func getPage(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestPages_Render(t *testing.T) {
	srv := newTestServer(t, nil)

	cases := []struct {
		path     string
		contains string
	}{
		{"/", "Midas"},
		{"/services", "Services"},
		{"/services/kol-endorsement", "KOL"},
		{"/work", "Our Work"},
		{"/case-studies", "Case Studies"},
		{"/case-studies/brand-transformation", "Brand"},
		{"/login", "Sign In"},
		{"/register", "Create Account"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, body := getPage(t, http.DefaultClient, srv.URL+tc.path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
			assert.Contains(t, body, tc.contains)
		})
	}
}

func TestPages_UnknownContent(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/services/no-such-service", "/case-studies/no-such-study"} {
		resp, _ := getPage(t, http.DefaultClient, srv.URL+path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestPortalPages_RedirectAnonymous(t *testing.T) {
	srv := newTestServer(t, nil)

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	for _, path := range []string{"/dashboard", "/kol"} {
		resp, _ := getPage(t, client, srv.URL+path)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestDashboard_RendersForSession(t *testing.T) {
	srv := newTestServer(t, nil)

	sdk := portalsdk.NewSDKClient(srv.URL)
	registerAccount(t, sdk, "client@example.com")

	// Reuse the SDK's cookie jar so the page request carries the session.
	resp, body := getPage(t, sdk.HTTPClient, srv.URL+"/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Rina Wijaya")
}

func TestKOLPage_RendersRoster(t *testing.T) {
	rows := []map[string]any{{"id": 1, "name": "Dewi", "platform": "instagram"}}
	srv := newTestServer(t, newDirectoryBackend(t, rows, 1))

	sdk := portalsdk.NewSDKClient(srv.URL)
	registerAccount(t, sdk, "client@example.com")

	resp, body := getPage(t, sdk.HTTPClient, srv.URL+"/kol")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Dewi")
}

func TestKOLPage_DegradesWithoutBackend(t *testing.T) {
	srv := newTestServer(t, nil)

	sdk := portalsdk.NewSDKClient(srv.URL)
	registerAccount(t, sdk, "client@example.com")

	resp, body := getPage(t, sdk.HTTPClient, srv.URL+"/kol")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "temporarily unavailable")
}

func TestPortalURL_RedirectsToDashboard(t *testing.T) {
	srv := newTestServer(t, nil)

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, _ := getPage(t, client, srv.URL+"/portal")
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestLoginPage_RedirectsSignedIn(t *testing.T) {
	srv := newTestServer(t, nil)

	sdk := portalsdk.NewSDKClient(srv.URL)
	registerAccount(t, sdk, "client@example.com")

	sdk.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	resp, _ := getPage(t, sdk.HTTPClient, srv.URL+"/login")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}
