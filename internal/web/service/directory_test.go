package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midas-agency/midas/internal/web/lowcode"
)

func newDirectoryService(t *testing.T, handler http.HandlerFunc) *DirectoryService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := lowcode.New(lowcode.Config{
		BaseURL: srv.URL,
		Token:   "test-token",
		Project: "midas",
		Table:   "kol",
	})
	require.NoError(t, err)
	return NewDirectoryService(client)
}

func rosterHandler(t *testing.T, captured *string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			*captured = r.URL.RawQuery
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"list": []map[string]any{
				{"id": 1, "name": "Dian", "platform": "Instagram", "followers": 120000, "category": "Beauty", "agency_notes": "x"},
				{"id": 2, "name": "Bayu", "platform": "TikTok", "followers": 450000, "category": "Tech", "agency_notes": "y"},
			},
			"pageInfo": map[string]any{"totalRows": 2, "isLastPage": true},
		})
	}
}

func TestDirectoryList(t *testing.T) {
	var query string
	svc := newDirectoryService(t, rosterHandler(t, &query))

	page, err := svc.List(context.Background(), 10, 0)
	require.NoError(t, err)

	assert.Len(t, page.Rows, 2)
	assert.Equal(t, 2, page.TotalRows)
	assert.True(t, page.IsLastPage)
	assert.Equal(t, 10, page.Limit)
	assert.Contains(t, query, "limit=10")
}

func TestDirectoryList_ColumnOrder(t *testing.T) {
	svc := newDirectoryService(t, rosterHandler(t, nil))

	page, err := svc.List(context.Background(), 10, 0)
	require.NoError(t, err)

	// Preferred columns lead, anything extra trails alphabetically.
	assert.Equal(t, []string{"id", "name", "platform", "followers", "category", "agency_notes"}, page.Columns)
}

func TestDirectoryList_ClampsPagination(t *testing.T) {
	var query string
	svc := newDirectoryService(t, rosterHandler(t, &query))

	page, err := svc.List(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Equal(t, defaultPageSize, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Contains(t, query, "limit=25")
	assert.NotContains(t, query, "offset")

	page, err = svc.List(context.Background(), 5000, 50)
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, page.Limit)
	assert.Contains(t, query, "limit=100")
	assert.Contains(t, query, "offset=50")
}

func TestDirectoryList_EmptyRoster(t *testing.T) {
	svc := newDirectoryService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"list":     []map[string]any{},
			"pageInfo": map[string]any{"totalRows": 0, "isLastPage": true},
		})
	})

	page, err := svc.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Rows)
	assert.Nil(t, page.Columns)
}

func TestDirectoryList_UpstreamFailure(t *testing.T) {
	svc := newDirectoryService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"msg":"Invalid token"}`, http.StatusUnauthorized)
	})

	_, err := svc.List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
}

func TestDirectoryList_NotConfigured(t *testing.T) {
	svc := NewDirectoryService(nil)

	_, err := svc.List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, lowcode.ErrNotConfigured)
}
