// Package postgrest implements the user store against the managed row-store
// backend's REST API. The backend speaks the PostgREST dialect: tables under
// /rest/v1/{table}, horizontal filters as query parameters, SQLSTATE codes in
// JSON error bodies.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/midas-agency/midas/internal/web/store"
)

const defaultTimeout = 10 * time.Second

type Store struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ store.Store = (*Store)(nil)

// New returns a store talking to the backend at baseURL (the project root,
// without the /rest/v1 suffix) using apiKey for both the apikey header and
// the bearer token, which is how the anon role authenticates.
func New(baseURL, apiKey string) *Store {
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

func (s *Store) Users() store.Users { return &usersRepo{s: s} }

// Ping issues a cheap root request to verify the endpoint and key work.
func (s *Store) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/rest/v1/", nil)
	if err != nil {
		return err
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("postgrest: ping returned %d", resp.StatusCode)
	}
	return nil
}

func (s *Store) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func (s *Store) authorize(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
}

// do performs one REST call. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response. prefer sets the Prefer header ("return=
// representation" to get rows back from writes).
func (s *Store) do(
	ctx context.Context,
	method, table string,
	query url.Values,
	prefer string,
	body, out any,
) error {
	endpoint := s.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	s.authorize(req)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return mapError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// errorBody is the PostgREST error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// mapError normalises an error response onto the store sentinels. The
// SQLSTATE codes are the contract: 23505 unique violation, 42P01 undefined
// table, 42501 insufficient privilege.
func mapError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body errorBody
	_ = json.Unmarshal(raw, &body)

	switch {
	case body.Code == "23505":
		return fmt.Errorf("%w: %s", store.ErrDuplicateKey, body.Message)
	case body.Code == "42P01",
		strings.Contains(body.Message, "relation") && strings.Contains(body.Message, "does not exist"):
		return fmt.Errorf("%w: %s", store.ErrSchemaMissing, body.Message)
	case body.Code == "42501",
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", store.ErrPermissionDenied, body.Message)
	}

	if body.Message != "" {
		return fmt.Errorf("postgrest: status %d code %q: %s", resp.StatusCode, body.Code, body.Message)
	}
	return fmt.Errorf("postgrest: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
}
