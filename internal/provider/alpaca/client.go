package alpaca

import (
	"net/http"
	"net/url"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=alpaca_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	// baseURL is the default Market Data API host.
	baseURL = "https://data.alpaca.markets"
	// defaultStockFeed works with free-tier credentials.
	defaultStockFeed = "iex"
	// defaultCryptoLocation is the crypto venue group used by the v1beta3 API.
	defaultCryptoLocation = "us"
)

// MarketDataClient is a client for the Alpaca Market Data API.
type MarketDataClient struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
	// stockFeed selects the stock quote feed (iex, sip, ...).
	stockFeed string
	// cryptoLocation selects the crypto venue group.
	cryptoLocation string
}

// MarketDataClientOption is a configuration option for the Market Data client.
type MarketDataClientOption func(*MarketDataClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) MarketDataClientOption {
	return func(c *MarketDataClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) MarketDataClientOption {
	return func(c *MarketDataClient) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) MarketDataClientOption {
	return func(c *MarketDataClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithStockFeed sets the feed used for stock quotes.
func WithStockFeed(feed string) MarketDataClientOption {
	return func(c *MarketDataClient) {
		if feed != "" {
			c.stockFeed = feed
		}
	}
}

// WithCryptoLocation sets the venue group used for crypto quotes.
func WithCryptoLocation(loc string) MarketDataClientOption {
	return func(c *MarketDataClient) {
		if loc != "" {
			c.cryptoLocation = loc
		}
	}
}

// NewMarketDataClient creates a new Alpaca Market Data client.
func NewMarketDataClient(key, secret string, options ...MarketDataClientOption) (*MarketDataClient, error) {
	var client = &MarketDataClient{
		baseURL:        baseURL,
		httpClient:     http.DefaultClient,
		header:         http.Header{},
		query:          url.Values{},
		stockFeed:      defaultStockFeed,
		cryptoLocation: defaultCryptoLocation,
	}
	// https://docs.alpaca.markets/docs/authentication
	if key != "" {
		client.header.Set("APCA-API-KEY-ID", key)
	}
	if secret != "" {
		client.header.Set("APCA-API-SECRET-KEY", secret)
	}
	client.header.Set("Accept", "application/json")
	for _, option := range options {
		option(client)
	}
	return client, nil
}
