package alpaca

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnauthorized is returned when the API rejects the credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited is returned on HTTP 429. Callers are not expected to retry.
	ErrRateLimited = errors.New("rate limited")
)

// Quote is the latest top-of-book quote for a symbol.
// Prices are nil when the field is missing from the payload.
type Quote struct {
	AskPrice    *decimal.Decimal `json:"ap"`
	AskSize     *decimal.Decimal `json:"as"`
	AskExchange string           `json:"ax,omitempty"`
	BidPrice    *decimal.Decimal `json:"bp"`
	BidSize     *decimal.Decimal `json:"bs"`
	BidExchange string           `json:"bx,omitempty"`
	Timestamp   time.Time        `json:"t"`
	Conditions  []string         `json:"c,omitempty"`
	Tape        string           `json:"z,omitempty"`
}

type latestQuotesResponse struct {
	Quotes map[string]Quote `json:"quotes"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetLatestStockQuotes retrieves the latest quote for each stock or ETF symbol.
// Symbols without a quote are absent from the returned map.
func (c *MarketDataClient) GetLatestStockQuotes(ctx context.Context, symbols []string, opts ...MarketDataClientOption) (map[string]Quote, error) {
	override := c.clone(opts...)

	query := maps.Clone(override.query)
	query.Set("symbols", strings.Join(symbols, ","))
	query.Set("feed", override.stockFeed)

	return override.getLatestQuotes(ctx, "/v2/stocks/quotes/latest", query)
}

// GetLatestCryptoQuotes retrieves the latest quote for each crypto pair (e.g. BTC/USD).
// Symbols without a quote are absent from the returned map.
func (c *MarketDataClient) GetLatestCryptoQuotes(ctx context.Context, symbols []string, opts ...MarketDataClientOption) (map[string]Quote, error) {
	override := c.clone(opts...)

	query := maps.Clone(override.query)
	query.Set("symbols", strings.Join(symbols, ","))

	path := fmt.Sprintf("/v1beta3/crypto/%s/latest/quotes", url.PathEscape(override.cryptoLocation))
	return override.getLatestQuotes(ctx, path, query)
}

func (c *MarketDataClient) clone(opts ...MarketDataClientOption) *MarketDataClient {
	var override = &MarketDataClient{
		baseURL:        c.baseURL,
		httpClient:     c.httpClient,
		header:         c.header.Clone(),
		query:          c.query,
		stockFeed:      c.stockFeed,
		cryptoLocation: c.cryptoLocation,
	}
	for _, opt := range opts {
		opt(override)
	}
	return override
}

func (c *MarketDataClient) getLatestQuotes(ctx context.Context, path string, query url.Values) (map[string]Quote, error) {
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized

	case http.StatusTooManyRequests:
		return nil, ErrRateLimited

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("bad request: %s", readMessage(res.Body))

	default:
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var body latestQuotesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding quotes response: %w", err)
	}
	if body.Quotes == nil {
		body.Quotes = map[string]Quote{}
	}
	return body.Quotes, nil
}

// readMessage extracts the API error message, falling back to the raw body.
func readMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 2<<10))
	var e errorResponse
	if err := json.Unmarshal(b, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(b))
}
