package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Page is a database row. Only the property shapes this module reads are
// decoded; the rest are kept as their type tag.
type Page struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	URL            string              `json:"url,omitempty"`
	Archived       bool                `json:"archived"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	Properties     map[string]Property `json:"properties"`
}

// Property is one entry of a page's property bag.
type Property struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Number   *json.Number  `json:"number,omitempty"`
}

type RichText struct {
	Type      string `json:"type,omitempty"`
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

type Text struct {
	Content string `json:"content"`
}

type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// QueryDatabaseRequest is the body of a database query. Filters and sorts
// are not needed here.
type QueryDatabaseRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

type QueryDatabaseResponse struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// PropertyValue is a typed property write.
type PropertyValue struct {
	Number *json.Number `json:"number,omitempty"`
}

// NumberValue builds a number write from its decimal string form.
func NumberValue(n string) PropertyValue {
	v := json.Number(n)
	return PropertyValue{Number: &v}
}

type UpdatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties"`
}

// ErrUnauthorized matches any *APIError with status 401.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is the error object returned by Notion on non-2xx responses.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("notion: status %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

func decodeAPIError(res *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<10))
	apiErr := &APIError{}
	if err := json.Unmarshal(b, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(b))
	}
	apiErr.Status = res.StatusCode
	return apiErr
}
