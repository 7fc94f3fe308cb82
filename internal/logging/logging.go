// Package logging wraps zap behind the small structured-logging surface the
// rest of the service uses.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls the minimum severity that gets emitted.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Field is a single structured log field.
type Field = zap.Field

// Logger emits structured logs.
type Logger struct {
	zl *zap.Logger
}

// New creates a logger writing JSON lines to stderr at the given level.
func New(level Level) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Config above is static; Build only fails on bad output paths.
		zl = zap.NewNop()
	}
	return &Logger{zl: zl}
}

func zapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithField builds a single structured field.
func WithField(key string, value interface{}) Field {
	return zap.Any(key, value)
}

// WithFields builds a set of structured fields from a map, inlined into the
// log entry rather than nested under a key.
func WithFields(fields map[string]interface{}) Field {
	return zap.Inline(zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		for k, v := range fields {
			if err := enc.AddReflected(k, v); err != nil {
				return err
			}
		}
		return nil
	}))
}

func (l *Logger) Debug(msg string, fields ...Field) { l.zl.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.zl.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.zl.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.zl.Error(msg, fields...) }

// Sync flushes buffered log entries.
func (l *Logger) Sync() error { return l.zl.Sync() }
