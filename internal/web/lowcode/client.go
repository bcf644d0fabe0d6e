// Package lowcode is a read-only client for the low-code table backend that
// hosts the KOL directory. The backend exposes spreadsheet-like tables over a
// REST API with token auth and limit/offset pagination; this client only ever
// lists rows.
package lowcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// ErrNotConfigured reports that the backend endpoint or token is missing.
var ErrNotConfigured = errors.New("lowcode: backend not configured")

type Config struct {
	BaseURL string
	Token   string
	Project string
	Table   string
	View    string // optional; falls back to the raw table rows
}

type Client struct {
	cfg    Config
	client *http.Client
}

// New returns a client for the configured project/table. Returns
// ErrNotConfigured when the endpoint, token, project or table is missing;
// which identifiers exist is the only validation done here.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" || cfg.Token == "" || cfg.Project == "" || cfg.Table == "" {
		return nil, ErrNotConfigured
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// ListOptions control pagination. Zero values mean backend defaults.
type ListOptions struct {
	Limit  int
	Offset int
}

// Page is one page of rows. Rows keep the backend's column names; the caller
// derives a rendering schema from them.
type Page struct {
	Rows       []map[string]any
	TotalRows  int
	IsLastPage bool
}

type listResponse struct {
	List     []map[string]any `json:"list"`
	PageInfo struct {
		TotalRows  int  `json:"totalRows"`
		IsLastPage bool `json:"isLastPage"`
	} `json:"pageInfo"`
}

// List fetches one page of rows from the configured view, or from the table
// itself when no view is configured.
func (c *Client) List(ctx context.Context, opts ListOptions) (Page, error) {
	endpoint := c.cfg.BaseURL + "/api/v1/db/data/noco/" +
		url.PathEscape(c.cfg.Project) + "/" + url.PathEscape(c.cfg.Table)
	if c.cfg.View != "" {
		endpoint += "/views/" + url.PathEscape(c.cfg.View)
	}

	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("xc-token", c.cfg.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Page{}, fmt.Errorf("lowcode: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Page{}, fmt.Errorf("lowcode: decoding response: %w", err)
	}

	return Page{
		Rows:       body.List,
		TotalRows:  body.PageInfo.TotalRows,
		IsLastPage: body.PageInfo.IsLastPage,
	}, nil
}
