package hub

import (
	"errors"
	"fmt"
)

// APIError represents a non-success response from the hub API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hub: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// NetworkError represents a transport-level failure: DNS, connect,
// TLS handshake or timeout. The request never produced an HTTP
// response, so no status code is available.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("hub: network error for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError represents a success response whose body
// could not be decoded into a known payload shape.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("hub: malformed response from %s: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsNetworkError checks if the error indicates a transport failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsRateLimited checks if the error indicates rate limiting by the hub.
// Rate-limited responses are retried before surfacing, so seeing this
// means the retry budget is already spent.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

// IsServerError checks if the error indicates a hub-side failure.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}
