package portalsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Directory fetches one page of the KOL roster. Zero limit asks the server
// for its default page size.
func (c *SDKClient) Directory(ctx context.Context, limit, offset int) (DirectoryPage, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	path := "/v1/kol"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page DirectoryPage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &page); err != nil {
		return DirectoryPage{}, err
	}
	return page, nil
}
