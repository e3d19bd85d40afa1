// Package logger provides a process-wide structured logger.
//
// Output defaults to io.Discard so a terminal UI is never corrupted by log
// lines; call Init with a file or os.Stderr to see them.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	logLevel      = new(slog.LevelVar)
	closer        io.Closer
)

func init() {
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
}

// ParseLevel converts "debug", "info", "warn" or "error" into a slog.Level.
// Unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init replaces the default logger. A nil output discards everything.
func Init(level slog.Level, output io.Writer) {
	if output == nil {
		output = io.Discard
	}

	logLevel.Set(level)

	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}

	mu.Lock()
	defaultLogger = slog.New(slog.NewTextHandler(output, &opts))
	mu.Unlock()
}

// InitFile opens path for appending and logs to it. An empty path keeps
// logging discarded and "-" logs to stderr.
func InitFile(level string, path string) error {
	switch path {
	case "":
		Init(ParseLevel(level), io.Discard)
		return nil
	case "-":
		Init(ParseLevel(level), os.Stderr)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	mu.Lock()
	if closer != nil {
		_ = closer.Close()
	}
	closer = f
	mu.Unlock()

	Init(ParseLevel(level), f)
	return nil
}

// Close releases the log file opened by InitFile, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Get returns the current logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func logAtLevel(level slog.Level, format string, args ...any) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	_ = l.Handler().Handle(context.Background(), r)
}

func Debugf(format string, args ...any) {
	logAtLevel(slog.LevelDebug, format, args...)
}

func Infof(format string, args ...any) {
	logAtLevel(slog.LevelInfo, format, args...)
}

func Warnf(format string, args ...any) {
	logAtLevel(slog.LevelWarn, format, args...)
}

func Errorf(format string, args ...any) {
	logAtLevel(slog.LevelError, format, args...)
}
