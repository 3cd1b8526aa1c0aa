package canto

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means the Canto domain or token is missing. This
	// is a setup problem for the site admin, not a transient fault.
	ErrNotConfigured = errors.New("Canto API is not configured")

	// ErrNotFound means no asset matched. Callers render an empty or
	// placeholder state, it is not an error envelope.
	ErrNotFound = errors.New("asset not found")
)

// TransportError wraps a network or timeout failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-200 response from the Canto API.
type HTTPError struct {
	Code    int
	Snippet string
}

func (e *HTTPError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("API request failed with HTTP code: %d. Response: %s", e.Code, e.Snippet)
	}
	return fmt.Sprintf("API request failed with HTTP code: %d", e.Code)
}

// InvalidResponseError is an empty body or undecodable JSON.
type InvalidResponseError struct {
	Reason string
}

func (e *InvalidResponseError) Error() string {
	return e.Reason
}

// UpstreamError carries the error field of a JSON body the Canto API
// returned with a 200.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return "error from Canto API: " + e.Message
}

// IsNotFound reports whether err is the not-found outcome rather than a
// real failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
