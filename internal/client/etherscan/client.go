package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	httpClient "github.com/feescope/feescope-api/internal/client/http"
	"github.com/feescope/feescope-api/internal/logger"
	"github.com/feescope/feescope-api/internal/types/business"
)

const (
	defaultBaseURL = "https://api.etherscan.io"
	apiPath        = "/api"
	defaultTimeout = 30 * time.Second

	// Etherscan reports "no activity in range" through the envelope rather
	// than an empty 200; it is not an error condition.
	noTransactionsMessage = "No transactions found"
)

// Client manages communication with the Etherscan API.
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *httpClient.HTTPClient
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used in tests and for
// alternative explorer deployments).
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

// NewClient creates a new Etherscan API client.
func NewClient(apiKey string, options ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
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

// GetBlockNumberByTime returns the number of the closest block mined at or
// before the given instant.
func (c *Client) GetBlockNumberByTime(ctx context.Context, ts time.Time) (int64, error) {
	envelope, err := c.get(ctx,
		httpClient.WithQueryParam("module", "block"),
		httpClient.WithQueryParam("action", "getblocknobytime"),
		httpClient.WithQueryParam("timestamp", strconv.FormatInt(ts.Unix(), 10)),
		httpClient.WithQueryParam("closest", "before"),
	)
	if err != nil {
		return 0, err
	}

	if envelope.Status != "1" {
		return 0, fmt.Errorf("etherscan block lookup failed: %s (%s)",
			envelope.Message, strings.TrimSpace(string(envelope.Result)))
	}

	var blockStr string
	if err := json.Unmarshal(envelope.Result, &blockStr); err != nil {
		return 0, fmt.Errorf("malformed block lookup result: %w", err)
	}
	blockNumber, err := strconv.ParseInt(blockStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed block number %q: %w", blockStr, err)
	}

	logger.Debug("Resolved block number",
		zap.Time("timestamp", ts),
		zap.Int64("block", blockNumber))

	return blockNumber, nil
}

// GetNormalTransactions returns the transactions sent to or from the
// address between the two blocks, ascending by block order. An address
// with no activity in range yields an empty slice, not an error.
func (c *Client) GetNormalTransactions(ctx context.Context, address string, startBlock, endBlock int64) ([]business.Transaction, error) {
	envelope, err := c.get(ctx,
		httpClient.WithQueryParam("module", "account"),
		httpClient.WithQueryParam("action", "txlist"),
		httpClient.WithQueryParam("address", address),
		httpClient.WithQueryParam("startblock", strconv.FormatInt(startBlock, 10)),
		httpClient.WithQueryParam("endblock", strconv.FormatInt(endBlock, 10)),
		httpClient.WithQueryParam("sort", "asc"),
	)
	if err != nil {
		return nil, err
	}

	if envelope.Status != "1" && envelope.Message != noTransactionsMessage {
		return nil, fmt.Errorf("etherscan txlist failed: %s (%s)",
			envelope.Message, strings.TrimSpace(string(envelope.Result)))
	}

	var results []txResult
	if err := json.Unmarshal(envelope.Result, &results); err != nil {
		return nil, fmt.Errorf("malformed txlist result: %w", err)
	}

	transactions := make([]business.Transaction, 0, len(results))
	for _, r := range results {
		tx, err := r.toTransaction()
		if err != nil {
			return nil, fmt.Errorf("malformed transaction %s: %w", r.Hash, err)
		}
		transactions = append(transactions, tx)
	}

	logger.Debug("Fetched transactions",
		zap.String("address", address),
		zap.Int64("start_block", startBlock),
		zap.Int64("end_block", endBlock),
		zap.Int("count", len(transactions)))

	return transactions, nil
}

func (r txResult) toTransaction() (business.Transaction, error) {
	blockNumber, err := strconv.ParseInt(r.BlockNumber, 10, 64)
	if err != nil {
		return business.Transaction{}, fmt.Errorf("blockNumber %q: %w", r.BlockNumber, err)
	}
	unixTs, err := strconv.ParseInt(r.TimeStamp, 10, 64)
	if err != nil {
		return business.Transaction{}, fmt.Errorf("timeStamp %q: %w", r.TimeStamp, err)
	}
	gasPrice, err := strconv.ParseFloat(r.GasPrice, 64)
	if err != nil {
		return business.Transaction{}, fmt.Errorf("gasPrice %q: %w", r.GasPrice, err)
	}
	gasUsed, err := strconv.ParseFloat(r.GasUsed, 64)
	if err != nil {
		return business.Transaction{}, fmt.Errorf("gasUsed %q: %w", r.GasUsed, err)
	}

	return business.Transaction{
		Hash:        r.Hash,
		From:        r.From,
		To:          r.To,
		BlockNumber: blockNumber,
		Timestamp:   time.Unix(unixTs, 0).UTC(),
		GasPriceWei: gasPrice,
		GasUsed:     gasUsed,
	}, nil
}

func (c *Client) get(ctx context.Context, options ...httpClient.RequestOption) (*apiEnvelope, error) {
	options = append(options, httpClient.WithQueryParam("apikey", c.apiKey))

	resp, err := c.httpClient.Get(ctx, apiPath, options...)
	if err != nil {
		return nil, fmt.Errorf("etherscan request failed: %w", err)
	}

	var envelope apiEnvelope
	if err := c.httpClient.ProcessJSONResponse(resp, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode etherscan response: %w", err)
	}

	return &envelope, nil
}
