package syncer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pricesync/internal/config"
	"pricesync/internal/provider"
	"pricesync/internal/store"
)

//go:generate mockgen -package=syncer_test -destination=mock_syncer_test.go -source=syncer.go RowStore,PriceFetcher

// RowStore lists tracked-asset rows and writes prices back.
type RowStore interface {
	ListRows(ctx context.Context, databaseID string) ([]store.Row, error)
	UpdateNumber(ctx context.Context, rowID, field string, value decimal.Decimal) error
}

// PriceFetcher resolves one asset to a positive price.
type PriceFetcher interface {
	FetchPrice(ctx context.Context, asset provider.Asset) (decimal.Decimal, error)
}

type Config struct {
	DatabaseID    string
	PriceProperty string
	Properties    store.PropertyNames
}

// Syncer copies the latest quote of every tracked asset into its row.
type Syncer struct {
	cfg    Config
	rows   RowStore
	prices PriceFetcher
	log    *zap.Logger
}

func New(cfg Config, rows RowStore, prices PriceFetcher, log *zap.Logger) *Syncer {
	if cfg.PriceProperty == "" {
		cfg.PriceProperty = "Current Price"
	}
	if cfg.Properties.Name == "" {
		cfg.Properties.Name = "Name"
	}
	if cfg.Properties.Type == "" {
		cfg.Properties.Type = "Type"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Syncer{cfg: cfg, rows: rows, prices: prices, log: log.Named("syncer")}
}

// Run makes a single pass over the database. It fails only when the
// database is not configured or the rows cannot be listed; per-row
// failures are logged and the pass continues.
func (s *Syncer) Run(ctx context.Context) error {
	if s.cfg.DatabaseID == "" {
		return config.ErrMissingDatabaseID
	}
	log := s.log.With(zap.String("run_id", uuid.NewString()), zap.String("database_id", s.cfg.DatabaseID))

	rows, err := s.rows.ListRows(ctx, s.cfg.DatabaseID)
	if err != nil {
		log.Error("failed to list rows", zap.Error(err))
		return err
	}
	log.Info("syncing prices", zap.Int("rows", len(rows)))

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.syncRow(ctx, log, row)
	}
	return nil
}

func (s *Syncer) syncRow(ctx context.Context, log *zap.Logger, row store.Row) {
	asset := store.AssetFromRow(row, s.cfg.Properties)

	price, err := s.prices.FetchPrice(ctx, asset)
	if err != nil {
		reason := "error"
		var fe *provider.FetchError
		if errors.As(err, &fe) {
			reason = string(fe.Reason)
		}
		log.Debug("skipped row", zap.String("row_id", row.ID), zap.String("name", asset.Name), zap.String("reason", reason))
		return
	}
	if !price.IsPositive() {
		log.Warn("skipped row with non-positive price", zap.String("row_id", row.ID), zap.String("price", price.String()))
		return
	}

	// The store logs the outcome; a failed write does not stop the pass.
	_ = s.rows.UpdateNumber(ctx, row.ID, s.cfg.PriceProperty, price)
}
