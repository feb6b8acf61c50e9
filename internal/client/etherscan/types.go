package etherscan

import "encoding/json"

// --- Etherscan API Response Structs ---
// Etherscan wraps every payload in a status/message/result envelope. The
// result field is either a string (block lookups, error messages) or an
// array of objects (txlist), so it is kept raw until the action is known.

type apiEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// txResult is a single transaction record from the txlist action. All
// numeric fields arrive as decimal strings.
type txResult struct {
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Gas         string `json:"gas"`
	GasPrice    string `json:"gasPrice"`
	GasUsed     string `json:"gasUsed"`
	IsError     string `json:"isError"`
}
