package logger

import (
	"io"
	"log/slog"
)

// New returns a JSON logger writing to w. Env "dev" enables debug output.
func New(env string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("app", "dimcalc")
}
