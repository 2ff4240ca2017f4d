package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// InitLogger initializes a logger with the specified level and format
// ("json" or "text"). The JSON handler carries source location information.
func InitLogger(level slog.Level, format string) *slog.Logger {
	return NewLogger(os.Stdout, level, format)
}

// NewLogger builds a logger writing to w; split out so tests can capture
// output.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, AddSource: true}
	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// NewComponentLogger creates a component-specific logger with context.
// It adds the component name to all log messages for better traceability.
func NewComponentLogger(base *slog.Logger, component string) *slog.Logger {
	return base.With(
		slog.String("component", component),
	)
}

// ParseLevel maps a config/flag value to a slog level, defaulting to info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
