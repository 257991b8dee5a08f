package notion

import (
	"context"
	"net/http"
	"net/url"
)

// QueryDatabase returns one page of rows from a database.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryDatabaseRequest) (*QueryDatabaseResponse, error) {
	var out QueryDatabaseResponse
	path := "/v1/databases/" + url.PathEscape(databaseID) + "/query"
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
