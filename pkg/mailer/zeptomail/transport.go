package zeptomail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/zeptomail/pkg/logger"
	"github.com/dmitrymomot/zeptomail/pkg/mailer"
)

// Version is reported in the default User-Agent.
const Version = "1.0.0"

// Transport implements mailer.Sender using the ZeptoMail send-mail API.
// It is immutable after New and safe for concurrent use.
type Transport struct {
	client    Doer
	logger    *slog.Logger
	endpoint  string
	apiKey    string
	userAgent string
	timeout   time.Duration
	logging   bool
}

var _ mailer.Sender = (*Transport)(nil)

// New validates cfg, resolves the endpoint and creates a Transport.
// It returns ErrInvalidConfig for a missing or short API key, an unknown region
// or a malformed custom endpoint.
func New(cfg Config, opts ...Option) (*Transport, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	endpoint, err := ResolveEndpoint(cfg.Region, cfg.Endpoint, cfg.APIVersion, cfg.Regions)
	if err != nil {
		return nil, err
	}

	t := &Transport{
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger.NewNope(),
		endpoint:  endpoint,
		apiKey:    cfg.APIKey,
		userAgent: "zeptomail-go/" + Version,
		timeout:   cfg.Timeout,
		logging:   cfg.Logging,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Endpoint returns the resolved send-mail URL.
func (t *Transport) Endpoint() string {
	return t.endpoint
}

// Send implements mailer.Sender.
func (t *Transport) Send(ctx context.Context, msg *mailer.Message, env *mailer.Envelope) error {
	_, err := t.Deliver(ctx, msg, env)
	return err
}

// Deliver sends msg with a single POST and classifies the outcome.
//
// It returns *ConnectionError when no response was received and *APIError when
// the API answered with a non-2xx status or the exchange broke after the status
// line. Deliver never retries.
func (t *Transport) Deliver(ctx context.Context, msg *mailer.Message, env *mailer.Envelope) (*Response, error) {
	if msg == nil {
		return nil, mailer.ErrNilMessage
	}

	ctx = logger.WithSendID(ctx, uuid.NewString())

	recipients := mailer.Classify(msg, env)
	payload := Encode(msg, recipients)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("zeptomail: failed to encode payload: %w", err)
	}

	t.log(ctx, slog.LevelInfo, "sending email",
		slog.String("subject", msg.Subject),
		slog.Any("to", addressList(recipients.ByBucket(mailer.BucketTo))),
	)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	req.Header.Set("Authorization", t.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", t.userAgent)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			defer resp.Body.Close()
		}
		err = classifyTransportError(resp, err)
		t.log(ctx, slog.LevelError, "email delivery failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, readErr := readBody(resp)
	result, err := classify(resp, respBody, readErr)
	if err != nil {
		t.log(ctx, slog.LevelError, "email rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	t.log(ctx, slog.LevelInfo, "email sent",
		slog.Int("status", result.StatusCode),
		slog.String("request_id", result.RequestID),
		slog.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// log emits a record only when logging is enabled.
func (t *Transport) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if !t.logging {
		return
	}
	t.logger.LogAttrs(ctx, level, msg, attrs...)
}

func addressList(addrs []mailer.Address) []string {
	result := make([]string, len(addrs))
	for i, a := range addrs {
		result[i] = a.Email
	}
	return result
}
