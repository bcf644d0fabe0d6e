package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the Midas portal API. The underlying HTTP client
// carries a cookie jar, so the session cookie issued at login is replayed on
// every subsequent request automatically.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a portal client for baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	jar, _ := cookiejar.New(nil)
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// doJSON sends a request with an optional JSON body and decodes a 2xx JSON
// response into out. Non-2xx responses are returned as *APIError.
func (c *SDKClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Code = errBody.Error
			apiErr.Description = errBody.ErrorDescription
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
