package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/midas-agency/midas/internal/web/lowcode"
)

// ErrDirectoryUnavailable: the low-code backend rejected or failed the
// listing request. The original upstream error is wrapped for logs.
var ErrDirectoryUnavailable = errors.New("directory backend unavailable")

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// Column names shown first when present, in this order. Anything else the
// backend returns is appended alphabetically.
var preferredColumns = []string{"id", "name", "platform", "followers", "category"}

// DirectoryService serves paginated, read-only views of the KOL roster held
// in the low-code table backend.
type DirectoryService struct {
	Client *lowcode.Client
}

func NewDirectoryService(c *lowcode.Client) *DirectoryService {
	return &DirectoryService{Client: c}
}

// DirectoryPage is one page of the roster with the column order resolved.
type DirectoryPage struct {
	Columns    []string         `json:"columns"`
	Rows       []map[string]any `json:"rows"`
	TotalRows  int              `json:"total_rows"`
	IsLastPage bool             `json:"is_last_page"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}

// List fetches one page of the roster. Limit is clamped to [1, maxPageSize]
// with a default of defaultPageSize; negative offsets become zero.
func (s *DirectoryService) List(ctx context.Context, limit, offset int) (DirectoryPage, error) {
	if s.Client == nil {
		return DirectoryPage{}, lowcode.ErrNotConfigured
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	page, err := s.Client.List(ctx, lowcode.ListOptions{Limit: limit, Offset: offset})
	if err != nil {
		if errors.Is(err, lowcode.ErrNotConfigured) {
			return DirectoryPage{}, err
		}
		return DirectoryPage{}, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	return DirectoryPage{
		Columns:    resolveColumns(page.Rows),
		Rows:       page.Rows,
		TotalRows:  page.TotalRows,
		IsLastPage: page.IsLastPage,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// resolveColumns derives a stable column order from the first row: preferred
// columns first, remaining keys alphabetically.
func resolveColumns(rows []map[string]any) []string {
	if len(rows) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(rows[0]))
	var columns []string
	for _, name := range preferredColumns {
		if _, ok := rows[0][name]; ok {
			seen[name] = true
			columns = append(columns, name)
		}
	}

	var rest []string
	for name := range rows[0] {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(columns, rest...)
}
