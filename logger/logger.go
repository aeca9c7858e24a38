// ABOUTME: slog setup for the RIMKI backend
// ABOUTME: Level and output format come from LOG_LEVEL and LOG_FORMAT

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Init installs the process-wide default logger. LOG_LEVEL selects the
// minimum level (default info); LOG_FORMAT=json switches to JSON output
// for log aggregation, anything else logs as text.
func Init() {
	slog.SetDefault(slog.New(newHandler(
		os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)))
}

func newHandler(level, format string, w io.Writer) slog.Handler {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
