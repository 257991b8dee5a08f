package alpacaadapter

import (
	"context"

	"pricesync/internal/provider"
	"pricesync/internal/provider/alpaca"
)

type Config struct {
	Name string // display name, default: Alpaca
}

// Adapter exposes the Alpaca Market Data client as a provider.QuoteSource.
type Adapter struct {
	cfg    Config
	client *alpaca.MarketDataClient
}

func New(cfg Config, client *alpaca.MarketDataClient) *Adapter {
	if cfg.Name == "" {
		cfg.Name = "Alpaca"
	}
	return &Adapter{cfg: cfg, client: client}
}

func (a *Adapter) Name() string { return a.cfg.Name }

func (a *Adapter) LatestStockQuotes(ctx context.Context, symbols []string) (map[string]provider.Quote, error) {
	raw, err := a.client.GetLatestStockQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}
	return convert(raw), nil
}

func (a *Adapter) LatestCryptoQuotes(ctx context.Context, symbols []string) (map[string]provider.Quote, error) {
	raw, err := a.client.GetLatestCryptoQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}
	return convert(raw), nil
}

func convert(raw map[string]alpaca.Quote) map[string]provider.Quote {
	out := make(map[string]provider.Quote, len(raw))
	for sym, q := range raw {
		out[sym] = provider.Quote{
			Symbol:    sym,
			AskPrice:  q.AskPrice,
			BidPrice:  q.BidPrice,
			Timestamp: q.Timestamp.UTC(),
		}
	}
	return out
}
