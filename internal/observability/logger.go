package observability

import (
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/quake-watch/internal/config"
)

// NewFileLogger logs to cfg.LogFile, or discards everything when no file is
// configured. The terminal front-ends own stdout, so they log here instead of
// through the shared stdout logger. The returned closer must be called on
// shutdown.
func NewFileLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return NewLoggerTo(f, cfg.LogLevel, cfg.LogFormat), f, nil
}

// NewLoggerTo builds a logger writing to w. Unknown levels fall back to info.
func NewLoggerTo(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
