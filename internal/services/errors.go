package services

import "fmt"

// InvalidRangeError rejects user input before any upstream call is made.
// It maps to an HTTP 400 at the boundary, not to a server fault.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return e.Reason
}

// UpstreamError marks a transport-level or malformed-response failure from
// an upstream API that is fatal for the whole request (block resolution and
// transaction fetching). Per-transaction price failures are absorbed as
// "price unknown" instead and never surface as an UpstreamError.
type UpstreamError struct {
	Upstream string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s unavailable: %v", e.Upstream, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
