package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	httpClient "github.com/feescope/feescope-api/internal/client/http"
	"github.com/feescope/feescope-api/internal/logger"
)

const (
	defaultBaseURL = "https://api.bybit.com"
	defaultTimeout = 30 * time.Second

	klinePath  = "/v5/market/kline"
	tickerPath = "/v5/market/tickers"

	categorySpot = "spot"
)

// Client manages communication with the Bybit v5 market API. The market
// endpoints are public; no API key is required.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *httpClient.HTTPClient
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a new Bybit market API client.
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, option := range options {
		option(c)
	}
	c.httpClient = httpClient.NewHTTPClient(
		httpClient.WithBaseURL(c.baseURL),
		httpClient.WithTimeout(c.timeout),
	)
	return c
}

// GetKlines fetches up to limit minute-or-coarser candles for the spot
// symbol starting at startMs. Candles are returned in chronological order
// (the v5 API itself lists them newest first).
func (c *Client) GetKlines(ctx context.Context, symbol, interval string, startMs int64, limit int) ([]Kline, error) {
	envelope, err := c.get(ctx, klinePath,
		httpClient.WithQueryParam("category", categorySpot),
		httpClient.WithQueryParam("symbol", symbol),
		httpClient.WithQueryParam("interval", interval),
		httpClient.WithQueryParam("start", strconv.FormatInt(startMs, 10)),
		httpClient.WithQueryParam("limit", strconv.Itoa(limit)),
	)
	if err != nil {
		return nil, err
	}

	var result klineResult
	if err := json.Unmarshal(envelope.Result, &result); err != nil {
		return nil, fmt.Errorf("malformed kline result: %w", err)
	}

	klines := make([]Kline, 0, len(result.List))
	for _, entry := range result.List {
		kline, err := parseKline(entry)
		if err != nil {
			return nil, fmt.Errorf("malformed kline entry for %s: %w", symbol, err)
		}
		klines = append(klines, kline)
	}

	sort.Slice(klines, func(i, j int) bool {
		return klines[i].StartTimeMs < klines[j].StartTimeMs
	})

	logger.Debug("Fetched klines",
		zap.String("symbol", symbol),
		zap.String("interval", interval),
		zap.Int64("start_ms", startMs),
		zap.Int("count", len(klines)))

	return klines, nil
}

// GetLatestTicker fetches the latest spot ticker for the symbol.
func (c *Client) GetLatestTicker(ctx context.Context, symbol string) (*Ticker, error) {
	envelope, err := c.get(ctx, tickerPath,
		httpClient.WithQueryParam("category", categorySpot),
		httpClient.WithQueryParam("symbol", symbol),
	)
	if err != nil {
		return nil, err
	}

	var result tickerResult
	if err := json.Unmarshal(envelope.Result, &result); err != nil {
		return nil, fmt.Errorf("malformed ticker result: %w", err)
	}
	if len(result.List) == 0 {
		return nil, fmt.Errorf("no ticker data for symbol %s", symbol)
	}

	lastPrice, err := strconv.ParseFloat(result.List[0].LastPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed last price %q: %w", result.List[0].LastPrice, err)
	}

	return &Ticker{
		Symbol:    result.List[0].Symbol,
		LastPrice: lastPrice,
	}, nil
}

func parseKline(entry []string) (Kline, error) {
	if len(entry) < 6 {
		return Kline{}, fmt.Errorf("expected at least 6 fields, got %d", len(entry))
	}

	startMs, err := strconv.ParseInt(entry[0], 10, 64)
	if err != nil {
		return Kline{}, fmt.Errorf("start time %q: %w", entry[0], err)
	}

	values := make([]float64, 5)
	for i, raw := range entry[1:6] {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Kline{}, fmt.Errorf("field %d %q: %w", i+1, raw, err)
		}
		values[i] = value
	}

	return Kline{
		StartTimeMs: startMs,
		Open:        values[0],
		High:        values[1],
		Low:         values[2],
		Close:       values[3],
		Volume:      values[4],
	}, nil
}

func (c *Client) get(ctx context.Context, path string, options ...httpClient.RequestOption) (*apiEnvelope, error) {
	resp, err := c.httpClient.Get(ctx, path, options...)
	if err != nil {
		return nil, fmt.Errorf("bybit request failed: %w", err)
	}

	var envelope apiEnvelope
	if err := c.httpClient.ProcessJSONResponse(resp, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode bybit response: %w", err)
	}

	if envelope.RetCode != 0 {
		return nil, fmt.Errorf("bybit API error %d: %s", envelope.RetCode, envelope.RetMsg)
	}

	return &envelope, nil
}
