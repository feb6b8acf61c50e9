package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// InvalidRequestResponse is returned for rejected input (HTTP 400)
type InvalidRequestResponse struct {
	InvalidRequest string `json:"invalid_request"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
