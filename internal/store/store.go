package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pricesync/internal/store/notion"
)

// pageSize is the largest page the Notion query endpoint returns.
const pageSize = 100

// QueryError means the row listing failed. No partial result is returned.
type QueryError struct {
	DatabaseID string
	Err        error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("list rows of %s: %v", e.DatabaseID, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// UpdateError means a single field write failed.
type UpdateError struct {
	RowID string
	Field string
	Err   error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("update %q of %s: %v", e.Field, e.RowID, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// PageClient is the subset of the Notion API the store uses.
type PageClient interface {
	QueryDatabase(ctx context.Context, databaseID string, req notion.QueryDatabaseRequest) (*notion.QueryDatabaseResponse, error)
	UpdatePage(ctx context.Context, pageID string, req notion.UpdatePageRequest) (*notion.Page, error)
}

// Store reads and patches tracked-asset rows in a Notion database.
type Store struct {
	client PageClient
	log    *zap.Logger
}

func New(client PageClient, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{client: client, log: log.Named("store")}
}

// ListRows returns every row of the database in the order Notion returns
// them, following pagination cursors to the end.
func (s *Store) ListRows(ctx context.Context, databaseID string) ([]Row, error) {
	var rows []Row
	req := notion.QueryDatabaseRequest{PageSize: pageSize}
	for {
		resp, err := s.client.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return nil, &QueryError{DatabaseID: databaseID, Err: err}
		}
		for _, p := range resp.Results {
			rows = append(rows, rowFromPage(p))
		}
		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		req.StartCursor = *resp.NextCursor
	}
	s.log.Debug("listed rows", zap.String("database_id", databaseID), zap.Int("rows", len(rows)))
	return rows, nil
}

// UpdateNumber writes value into a number property of one row. Failures are
// logged and returned as *UpdateError; there is no retry.
func (s *Store) UpdateNumber(ctx context.Context, rowID, field string, value decimal.Decimal) error {
	_, err := s.client.UpdatePage(ctx, rowID, notion.UpdatePageRequest{
		Properties: map[string]notion.PropertyValue{field: notion.NumberValue(value.String())},
	})
	if err != nil {
		s.log.Error("failed to update page", zap.String("row_id", rowID), zap.String("field", field), zap.Error(err))
		return &UpdateError{RowID: rowID, Field: field, Err: err}
	}
	s.log.Info("updated page", zap.String("row_id", rowID), zap.String("field", field), zap.String("price", value.String()))
	return nil
}
