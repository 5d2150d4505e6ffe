package zeptomail

import (
	"log/slog"
	"net/http"
)

// Doer performs HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Transport.
type Option func(*Transport)

// WithHTTPClient sets the HTTP client used for sends.
// The configured timeout still bounds every request through its context.
func WithHTTPClient(client Doer) Option {
	return func(t *Transport) {
		if client != nil {
			t.client = client
		}
	}
}

// WithLogger sets the logger for send lifecycle records.
// Records are only emitted when Config.Logging is true.
func WithLogger(log *slog.Logger) Option {
	return func(t *Transport) {
		if log != nil {
			t.logger = log
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(t *Transport) {
		if ua != "" {
			t.userAgent = ua
		}
	}
}
