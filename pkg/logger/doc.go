// Package logger provides structured logging built on log/slog, with context
// extraction and optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.NewWithConfig(os.Stderr, logger.Config{Level: "debug", Format: "text"},
//		logger.SendIDExtractor(),
//	)
//
//	ctx := logger.WithSendID(context.Background(), "6f1c...")
//	log.InfoContext(ctx, "sending email", slog.String("subject", "Hi"))
//	// time=... level=INFO msg="sending email" subject=Hi send_id=6f1c...
//
// # Context Extractors
//
// A ContextExtractor pulls an attribute out of a context on every log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// LogHandlerDecorator wraps any slog.Handler and appends the extracted attributes
// before delegating. SendIDExtractor is the extractor used by the mail transport
// to correlate the records of a single send.
//
// # Sentry Integration
//
// NewWithSentry writes to the given writer and, when SentryConfig.DSN is set,
// forwards warnings and errors to Sentry. Without a DSN, or when Sentry fails to
// initialize, it falls back to the writer alone. Call FlushSentry before the
// process exits.
//
// # No-op Logger
//
// NewNope returns a logger that discards everything. Components that accept an
// optional *slog.Logger use it as their default.
package logger
