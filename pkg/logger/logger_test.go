package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		require.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}

func TestNewWithConfig_JSONWithSendID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithConfig(&buf, Config{Level: "info"}, SendIDExtractor())

	ctx := WithSendID(context.Background(), "send-123")
	log.InfoContext(ctx, "sending email", slog.String("subject", "Hi"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "sending email", rec["msg"])
	require.Equal(t, "Hi", rec["subject"])
	require.Equal(t, "send-123", rec["send_id"])
}

func TestNewWithConfig_TextFormatAndLevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithConfig(&buf, Config{Level: "warn", Format: "text"})

	log.Info("dropped")
	require.Empty(t, buf.String())

	log.Warn("kept")
	require.Contains(t, buf.String(), "msg=kept")
}

func TestSendIDExtractor_NoID(t *testing.T) {
	t.Parallel()

	_, ok := SendIDExtractor()(context.Background())
	require.False(t, ok)

	_, ok = SendIDExtractor()(WithSendID(context.Background(), ""))
	require.False(t, ok)
}

func TestLogHandlerDecorator_SkipsNilExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil, SendIDExtractor()))

	require.NotPanics(t, func() {
		log.InfoContext(WithSendID(context.Background(), "x"), "ok")
	})
	require.Contains(t, buf.String(), `"send_id":"x"`)
}

func TestNewWithSentry_NoDSNFallsBackToWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithSentry(&buf, Config{}, SentryConfig{})

	log.Error("boom")
	require.Contains(t, buf.String(), `"msg":"boom"`)
}

func TestMultiHandler_ForwardsToAll(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With(slog.String("component", "test"))

	log.Info("info only")
	log.Error("both")

	require.Contains(t, a.String(), "info only")
	require.Contains(t, a.String(), "both")
	require.NotContains(t, b.String(), "info only")
	require.Contains(t, b.String(), `"component":"test"`)
}

func TestNewNope_DiscardsEverything(t *testing.T) {
	t.Parallel()

	log := NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestMultiHandler_FailingHandlerDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	var ok bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(errWriter{}, nil),
		slog.NewJSONHandler(&ok, nil),
	)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))

	require.Error(t, err)
	require.Contains(t, ok.String(), `"msg":"hello"`)
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink unavailable")
}
