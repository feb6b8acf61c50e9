package requests

// AnalyzeRequest is the inbound payload for POST /analyze. Dates are
// accepted as RFC 3339 timestamps or plain YYYY-MM-DD dates.
type AnalyzeRequest struct {
	Address   string `json:"address" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}
