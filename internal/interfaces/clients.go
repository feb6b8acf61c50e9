package interfaces

import (
	"context"
	"time"

	"github.com/feescope/feescope-api/internal/client/bybit"
	"github.com/feescope/feescope-api/internal/types/business"
)

//go:generate mockgen -source=clients.go -destination=../mocks/mock_clients.go -package=mocks

// ExplorerClient is the outbound contract for the blockchain explorer:
// block resolution by timestamp and transaction listing by block range.
type ExplorerClient interface {
	// GetBlockNumberByTime returns the closest block at or before ts.
	GetBlockNumberByTime(ctx context.Context, ts time.Time) (int64, error)
	// GetNormalTransactions lists the address's transactions between the two
	// blocks in ascending order. No activity yields an empty slice.
	GetNormalTransactions(ctx context.Context, address string, startBlock, endBlock int64) ([]business.Transaction, error)
}

// ExchangeClient is the outbound contract for the exchange market API:
// historical candles and the latest ticker.
type ExchangeClient interface {
	// GetKlines returns up to limit candles from startMs in chronological order.
	GetKlines(ctx context.Context, symbol, interval string, startMs int64, limit int) ([]bybit.Kline, error)
	// GetLatestTicker returns the latest traded price for the symbol.
	GetLatestTicker(ctx context.Context, symbol string) (*bybit.Ticker, error)
}
