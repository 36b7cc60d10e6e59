package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger on stdout tagged with the service and host name.
func New(service, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, service, level)
}

func NewWithWriter(w io.Writer, service, level string) *slog.Logger {
	hostname, _ := os.Hostname()

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels,
// falling back to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
