package bybit

import "encoding/json"

// --- Bybit v5 API Response Structs ---
// Every v5 endpoint wraps its payload in a retCode/retMsg/result envelope.

type apiEnvelope struct {
	RetCode int             `json:"retCode"`
	RetMsg  string          `json:"retMsg"`
	Result  json.RawMessage `json:"result"`
	Time    int64           `json:"time"`
}

// klineResult holds the kline list; each entry is an array of strings:
// [startTime, open, high, low, close, volume, turnover].
type klineResult struct {
	Category string     `json:"category"`
	Symbol   string     `json:"symbol"`
	List     [][]string `json:"list"`
}

type tickerResult struct {
	Category string        `json:"category"`
	List     []tickerEntry `json:"list"`
}

type tickerEntry struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"lastPrice"`
	Bid1Price string `json:"bid1Price"`
	Ask1Price string `json:"ask1Price"`
}

// Kline is a single fixed-interval OHLCV candle.
type Kline struct {
	StartTimeMs int64
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      float64
}

// Ticker is the latest traded price for a symbol.
type Ticker struct {
	Symbol    string
	LastPrice float64
}
