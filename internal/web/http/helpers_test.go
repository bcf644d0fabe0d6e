package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/midas-agency/midas/internal/web/lowcode"
	"github.com/midas-agency/midas/internal/web/metrics"
	"github.com/midas-agency/midas/internal/web/service"
	"github.com/midas-agency/midas/internal/web/session"
	"github.com/midas-agency/midas/internal/web/store"
	"github.com/midas-agency/midas/internal/web/store/drivers/sqlite"
	"github.com/midas-agency/midas/pkg/httpx"
	"github.com/midas-agency/midas/pkg/portalsdk"
)

// testServer runs the full router against an in-memory sqlite store, the way
// the binary wires it, so handler tests cover the real middleware chain.
type testServer struct {
	*httptest.Server
	store store.Store
}

func newTestServer(t *testing.T, directory *lowcode.Client) *testServer {
	t.Helper()

	st, err := sqlite.NewStore("file:http_" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	sessions := session.NewManager(false)

	router := NewRouter(
		"test",
		st,
		directory,
		sessions,
		collector,
		registry,
		slog.New(slog.DiscardHandler),
	)
	router.AuthService = service.NewAuthService(st)
	router.DirectoryService = service.NewDirectoryService(directory)
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: st}
}

// newDirectoryBackend fakes the low-code table API with a single page of
// roster rows and returns a client pointed at it.
func newDirectoryBackend(t *testing.T, rows []map[string]any, totalRows int) *lowcode.Client {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("xc-token") != "test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"list": rows,
			"pageInfo": map[string]any{
				"totalRows":  totalRows,
				"isLastPage": true,
			},
		})
	}))
	t.Cleanup(backend.Close)

	client, err := lowcode.New(lowcode.Config{
		BaseURL: backend.URL,
		Token:   "test-token",
		Project: "midas",
		Table:   "kol",
	})
	require.NoError(t, err)
	return client
}

// httpxStrictBurst is the number of requests the strict profile admits
// before throttling, honouring any env override.
func httpxStrictBurst() int {
	return httpx.StrictLimit.Burst
}

func registerAccount(t *testing.T, sdk *portalsdk.SDKClient, email string) portalsdk.User {
	t.Helper()

	user, err := sdk.Register(context.Background(), portalsdk.RegisterRequest{
		FullName: "Rina Wijaya",
		Email:    email,
		Password: "Sunter3a",
		Company:  "PT Midas",
	})
	require.NoError(t, err)
	return user
}
