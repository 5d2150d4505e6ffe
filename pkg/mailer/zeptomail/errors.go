package zeptomail

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the three failure kinds of a send.
var (
	// ErrInvalidConfig is returned by New and ResolveEndpoint. It is never returned by Deliver.
	ErrInvalidConfig = errors.New("zeptomail: invalid configuration")

	// ErrConnection matches every *ConnectionError.
	ErrConnection = errors.New("zeptomail: connection failed")

	// ErrAPI matches every *APIError.
	ErrAPI = errors.New("zeptomail: api error")
)

// DefaultErrorMessage is used when a failure response has neither a "message" nor an "error" field.
const DefaultErrorMessage = "unknown API error"

// ConnectionError reports that the HTTP exchange could not be completed:
// DNS, TCP or TLS failure, or a timeout before any response arrived.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%v: %v", ErrConnection, e.Err)
}

// Unwrap exposes both ErrConnection and the transport cause to errors.Is and errors.As.
func (e *ConnectionError) Unwrap() []error {
	return []error{ErrConnection, e.Err}
}

// APIError reports that the API was reached but the send failed.
// StatusCode is 0 when the exchange broke before a status was available.
type APIError struct {
	StatusCode int    // HTTP status code
	Message    string // Human-readable message extracted from the body
	Body       string // Raw response body, verbatim
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", ErrAPI, e.StatusCode, e.Message)
}

// Is reports whether target is ErrAPI.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// IsRetryable reports whether err is worth retrying later:
// connection failures, rate limiting (429) and server errors (5xx).
// The transport never retries by itself.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrConnection) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	return false
}

func wrapConfigError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
