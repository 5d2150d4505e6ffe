package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger output settings.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" mapstructure:"level"`
	Format string `env:"LOG_FORMAT" envDefault:"json" mapstructure:"format"` // "json" or "text"
}

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithConfig(os.Stdout, Config{}, extractors...)
}

// NewWithConfig creates a logger writing to w using cfg.
// Unknown levels fall back to info, unknown formats to JSON.
func NewWithConfig(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(w, cfg), extractors...))
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel maps a level name to slog.Level. Empty or unknown names yield slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
