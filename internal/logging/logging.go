// SPDX-License-Identifier: EPL-2.0

// Package logging is a small structured logger over go.uber.org/zap.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

// Fields are structured key/value pairs attached to a log entry.
type Fields map[string]any

// Logger is the logging surface used by the command line tool.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	WithFields(fields Fields) Logger
	Sync() error
}

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is console or json.
	Format string
	// Output defaults to stderr.
	Output io.Writer
}

type zapLogger struct {
	l *zap.Logger
}

// New builds a zap backed Logger.
func New(opts Options) (Logger, error) {
	var level zapcore.Level
	switch strings.ToLower(opts.Level) {
	case "", "info":
		level = zapcore.InfoLevel
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, opts.Level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), level)
	return &zapLogger{l: zap.New(core)}, nil
}

// NewNop discards everything.
func NewNop() Logger {
	return &zapLogger{l: zap.NewNop()}
}

func toZap(fields []Fields) []zap.Field {
	n := 0
	for _, f := range fields {
		n += len(f)
	}
	if n == 0 {
		return nil
	}

	out := make([]zap.Field, 0, n)
	for _, f := range fields {
		keys := make([]string, 0, len(f))
		for k := range f {
			keys = append(keys, k)
		}
		// Stable output order.
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, zap.Any(k, f[k]))
		}
	}
	return out
}

func (z *zapLogger) Debug(msg string, fields ...Fields) { z.l.Debug(msg, toZap(fields)...) }
func (z *zapLogger) Info(msg string, fields ...Fields)  { z.l.Info(msg, toZap(fields)...) }
func (z *zapLogger) Warn(msg string, fields ...Fields)  { z.l.Warn(msg, toZap(fields)...) }

func (z *zapLogger) Error(err error, msg string, fields ...Fields) {
	zf := toZap(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	z.l.Error(msg, zf...)
}

func (z *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{l: z.l.With(toZap([]Fields{fields})...)}
}

func (z *zapLogger) Sync() error {
	// fsync on a terminal reports EINVAL.
	if err := z.l.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return fmt.Errorf("sync log: %w", err)
	}
	return nil
}
