package notion

import (
	"context"
	"net/http"
	"net/url"
)

// UpdatePage patches the given properties of a page and returns the updated page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (*Page, error) {
	var out Page
	path := "/v1/pages/" + url.PathEscape(pageID)
	if err := c.do(ctx, http.MethodPatch, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
