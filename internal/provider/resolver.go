package provider

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Reason classifies why no price could be resolved for an asset.
type Reason string

const (
	ReasonInvalidAsset Reason = "invalid asset"
	ReasonUnknownClass Reason = "unknown asset class"
	ReasonUpstream     Reason = "upstream error"
	ReasonNoQuote      Reason = "no quote"
	ReasonNoPrice      Reason = "no positive price"
)

// FetchError reports a failed price lookup. It is recoverable: the asset is
// skipped and the caller moves on.
type FetchError struct {
	Asset  Asset
	Reason Reason
	Err    error
}

func (e *FetchError) Error() string {
	name := e.Asset.Name
	if name == "" {
		name = "unknown"
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch price for %s: %s: %v", name, e.Reason, e.Err)
	}
	return fmt.Sprintf("fetch price for %s: %s", name, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Resolver turns an Asset into a single positive price.
type Resolver struct {
	src QuoteSource
	log *zap.Logger
}

func NewResolver(src QuoteSource, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{src: src, log: log.Named("resolver")}
}

// FetchPrice issues at most one quote request. Every failure, including
// upstream transport and decoding errors, comes back as a *FetchError.
func (r *Resolver) FetchPrice(ctx context.Context, asset Asset) (decimal.Decimal, error) {
	if !asset.Valid() {
		r.log.Warn("missing required fields: name, symbol or type; skipping",
			zap.String("name", asset.Name),
			zap.String("symbol", asset.Symbol),
			zap.String("type", string(asset.Class)))
		return decimal.Zero, &FetchError{Asset: asset, Reason: ReasonInvalidAsset}
	}

	var fetch func(context.Context, []string) (map[string]Quote, error)
	switch asset.Class {
	case ClassEquity, ClassFund:
		fetch = r.src.LatestStockQuotes
	case ClassCrypto:
		fetch = r.src.LatestCryptoQuotes
	default:
		r.log.Warn("unknown asset type", zap.String("name", asset.Name), zap.String("type", string(asset.Class)))
		return decimal.Zero, &FetchError{Asset: asset, Reason: ReasonUnknownClass}
	}

	quotes, err := fetch(ctx, []string{asset.Symbol})
	if err != nil {
		r.log.Error("error fetching quote",
			zap.String("name", asset.Name),
			zap.String("source", r.src.Name()),
			zap.Error(err))
		return decimal.Zero, &FetchError{Asset: asset, Reason: ReasonUpstream, Err: err}
	}

	q, ok := quotes[asset.Symbol]
	if !ok {
		return decimal.Zero, &FetchError{Asset: asset, Reason: ReasonNoQuote}
	}
	price, ok := q.Price()
	if !ok {
		return decimal.Zero, &FetchError{Asset: asset, Reason: ReasonNoPrice}
	}
	return price, nil
}
