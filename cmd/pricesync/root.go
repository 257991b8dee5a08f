package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricesync/internal/config"
	"pricesync/internal/httpx"
	"pricesync/internal/logging"
	"pricesync/internal/provider"
	"pricesync/internal/provider/alpaca"
	"pricesync/internal/provider/alpacaadapter"
	"pricesync/internal/store"
	"pricesync/internal/store/notion"
	"pricesync/internal/syncer"
)

type options struct {
	configPath string
	logLevel   string
	timeoutSec int
	databaseID string
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "pricesync",
		Short:         "Copy the latest Alpaca quotes into a Notion database",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("CONFIG_FILE"), "path to YAML config (optional)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	root.PersistentFlags().IntVar(&opts.timeoutSec, "timeout", 0, "per-request timeout in seconds (overrides REQUEST_TIMEOUT_SEC)")
	root.PersistentFlags().StringVar(&opts.databaseID, "database", "", "Notion database ID (overrides NOTION_DATABASE_ID)")

	root.AddCommand(syncCmd(&opts))
	return root
}

func syncCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one pass over every row of the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), *opts)
		},
	}
}

func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = strings.ToLower(opts.logLevel)
	}
	if opts.timeoutSec > 0 {
		cfg.RequestTimeoutSec = opts.timeoutSec
	}
	if opts.databaseID != "" {
		cfg.Notion.DatabaseID = opts.databaseID
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func runSync(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	s, err := buildSyncer(cfg, log)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

func buildSyncer(cfg config.Config, log *zap.Logger) (*syncer.Syncer, error) {
	httpClient := httpx.New(time.Duration(cfg.RequestTimeoutSec) * time.Second)

	alpacaClient, err := alpaca.NewMarketDataClient(
		cfg.Alpaca.APIKey,
		cfg.Alpaca.SecretKey,
		alpaca.WithBaseURL(cfg.Alpaca.DataURL),
		alpaca.WithHTTPClient(httpClient),
		alpaca.WithStockFeed(cfg.Alpaca.StockFeed),
		alpaca.WithCryptoLocation(cfg.Alpaca.CryptoLoc),
	)
	if err != nil {
		return nil, fmt.Errorf("alpaca client: %w", err)
	}
	if cfg.Alpaca.APIKey == "" || cfg.Alpaca.SecretKey == "" {
		log.Warn("alpaca credentials not set; requests will be unauthenticated")
	}

	notionClient, err := notion.NewClient(
		cfg.Notion.APIKey,
		notion.WithBaseURL(cfg.Notion.BaseURL),
		notion.WithVersion(cfg.Notion.Version),
		notion.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("notion client: %w", err)
	}
	if cfg.Notion.APIKey == "" {
		log.Warn("notion token not set; requests will be unauthenticated")
	}

	resolver := provider.NewResolver(alpacaadapter.New(alpacaadapter.Config{}, alpacaClient), log)
	rows := store.New(notionClient, log)

	return syncer.New(syncer.Config{
		DatabaseID:    cfg.Notion.DatabaseID,
		PriceProperty: cfg.Notion.PriceProperty,
		Properties: store.PropertyNames{
			Name: cfg.Notion.NameProperty,
			Type: cfg.Notion.TypeProperty,
		},
	}, rows, resolver, log), nil
}
