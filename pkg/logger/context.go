package logger

import (
	"context"
	"log/slog"
)

type sendIDKey struct{}

// WithSendID returns a context carrying the id of an outgoing email send.
func WithSendID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sendIDKey{}, id)
}

// SendID returns the send id stored in ctx, if any.
func SendID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sendIDKey{}).(string)
	return id, ok && id != ""
}

// SendIDExtractor adds a "send_id" attribute to records logged with a context
// created by WithSendID.
func SendIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := SendID(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("send_id", id), true
	}
}
