package providers

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// NetworkError reports a failed upstream fetch: a transport error, or a response with a
// non-200 status.
type NetworkError struct {
	Provider   string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: fetch %s: %v", e.Provider, e.URL, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s: fetch %s: unexpected status %d: %s", e.Provider, e.URL, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s: fetch %s: unexpected status %d", e.Provider, e.URL, e.StatusCode)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// ParseRetryAfter reads a Retry-After header expressed in seconds. Anything else yields 0.
func ParseRetryAfter(raw string) time.Duration {
	var seconds int
	if _, err := fmt.Sscanf(raw, "%d", &seconds); err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
