package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN" mapstructure:"dsn"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production" mapstructure:"environment"`
	Release     string `env:"SENTRY_RELEASE" mapstructure:"release"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level `mapstructure:"-"`
}

// NewWithSentry creates a logger that writes to w and to Sentry.
// If DSN is empty, only w is used (graceful fallback for local dev).
// Context extractors are applied to logs sent to both destinations.
func NewWithSentry(w io.Writer, logCfg Config, cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	outHandler := newHandler(w, logCfg)

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(outHandler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(outHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(outHandler, extractors...))
	}

	// Errors create Issues; warnings are kept as searchable logs.
	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(outHandler, sentryHandler), extractors...))
}

// FlushSentry waits up to timeout for buffered Sentry events to be sent.
// It is a no-op when Sentry was never initialized.
func FlushSentry(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
