package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AssetClass selects which quote endpoint serves an asset.
type AssetClass string

const (
	ClassEquity AssetClass = "equity"
	ClassFund   AssetClass = "fund"
	ClassCrypto AssetClass = "crypto"
)

// classAliases maps the option names used in the tracking database
// onto asset classes. Matching is exact.
var classAliases = map[string]AssetClass{
	"stock":  ClassEquity,
	"equity": ClassEquity,
	"etf":    ClassFund,
	"fund":   ClassFund,
	"crypto": ClassCrypto,
}

// ParseAssetClass maps a stored type label to an AssetClass.
// Unrecognized labels are returned unchanged so they can be reported by name.
func ParseAssetClass(label string) AssetClass {
	if c, ok := classAliases[label]; ok {
		return c
	}
	return AssetClass(label)
}

// Asset is the minimal tuple needed to request a quote.
// Empty fields are treated as absent.
type Asset struct {
	Name   string
	Symbol string
	Class  AssetClass
}

// Valid reports whether name, symbol and class are all present.
func (a Asset) Valid() bool {
	return a.Name != "" && a.Symbol != "" && a.Class != ""
}

// Quote is a snapshot of the best ask and bid for a symbol.
// A nil price means the provider did not report that side.
type Quote struct {
	Symbol    string
	AskPrice  *decimal.Decimal
	BidPrice  *decimal.Decimal
	Timestamp time.Time
}

// Price prefers a positive ask and falls back to the bid.
// It reports false when the chosen price is missing or not positive.
func (q Quote) Price() (decimal.Decimal, bool) {
	price := q.BidPrice
	if q.AskPrice != nil && q.AskPrice.IsPositive() {
		price = q.AskPrice
	}
	if price == nil || !price.IsPositive() {
		return decimal.Zero, false
	}
	return *price, true
}

// QuoteSource returns the latest quotes keyed by symbol. Symbols the
// upstream has no quote for are absent from the map.
type QuoteSource interface {
	Name() string
	LatestStockQuotes(ctx context.Context, symbols []string) (map[string]Quote, error)
	LatestCryptoQuotes(ctx context.Context, symbols []string) (map[string]Quote, error)
}
