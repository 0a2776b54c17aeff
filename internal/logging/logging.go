// Package logging installs the process logger: human-readable text on the
// console and rotated JSON in a log file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// multiHandler dispatches log records to multiple handlers based on level.
type multiHandler struct {
	console slog.Handler
	file    slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.file.Enabled(ctx, r.Level) {
		if err := h.file.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	if h.console.Enabled(ctx, r.Level) {
		if err := h.console.Handle(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &multiHandler{
		console: h.console.WithAttrs(attrs),
		file:    h.file.WithAttrs(attrs),
	}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	return &multiHandler{
		console: h.console.WithGroup(name),
		file:    h.file.WithGroup(name),
	}
}

// Options configures New.
type Options struct {
	// Dir is where vista.log is written. Empty disables the file output.
	Dir string
	// Level is the console level; the file always records Debug and above.
	Level slog.Level
	// Console receives console output. Defaults to os.Stderr.
	Console io.Writer
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// New builds a logger per opts. The returned cleanup closes the log file.
func New(opts Options) (*slog.Logger, func(), error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: opts.Level})
	if opts.Dir == "" {
		return slog.New(consoleHandler), func() {}, nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	// lumberjack handles log rotation
	lj := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, "vista.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		LocalTime:  true,
	}
	fileHandler := slog.NewJSONHandler(lj, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})

	logger := slog.New(&multiHandler{console: consoleHandler, file: fileHandler})
	cleanup := func() {
		if err := lj.Close(); err != nil {
			logger.Error("Failed to close log file", "error", err)
		}
	}
	return logger, cleanup, nil
}

// Init builds a logger per opts and installs it as the slog default.
func Init(opts Options) (func(), error) {
	logger, cleanup, err := New(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return cleanup, nil
}
