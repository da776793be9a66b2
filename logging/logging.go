// Package logging provides structured, colorized logging helpers for the
// hosts and tools
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Level represents a log level accepted by CLI and demo flags
type Level slog.Level

const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// maxLogSize rotates the debug log before it grows past this many bytes
const maxLogSize = 10 * 1024 * 1024

// ParseLevel converts a textual log level into a Level value.
// Unknown values fall back to info
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// NewLogger constructs a slog.Logger with a tint handler writing to w
func NewLogger(w io.Writer, level Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level: slog.Level(level),
	})
	return slog.New(handler)
}

// Discard returns a logger that drops every record. Full-screen hosts
// default to it so stray writes cannot tear the screen
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewFileLogger appends uncolored records to path, creating parent
// directories and rotating an oversized previous log aside with a timestamp
// suffix. The caller owns the returned closer
func NewFileLogger(path string, level Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := fmt.Sprintf("%s.%s.log",
			strings.TrimSuffix(path, ".log"), time.Now().Format("20060102-150405"))
		if err := os.Rename(path, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := tint.NewHandler(f, &tint.Options{
		Level:   slog.Level(level),
		NoColor: true,
	})
	return slog.New(handler), f, nil
}
