// Package logging builds the zap logger. The terminal belongs to the gauge,
// so records go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log sink and encoding.
type Options struct {
	Path   string // empty disables logging
	Level  string // debug, info, warn, error (default info)
	Format string // console or json (default console)
}

// New opens (or creates) the log file and returns a logger writing to it
// together with a function that flushes and closes the file.
func New(opts Options) (*zap.Logger, func() error, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(encoder(opts.Format), zapcore.AddSync(f), ParseLevel(opts.Level))
	logger := zap.New(core).With(zap.Int("pid", os.Getpid()))
	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

// NewOrNop behaves like New but degrades to a no-op logger when the file
// cannot be opened. The returned error is informational.
func NewOrNop(opts Options) (*zap.Logger, func() error, error) {
	logger, closeFn, err := New(opts)
	if err != nil {
		return zap.NewNop(), func() error { return nil }, err
	}
	return logger, closeFn, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}
