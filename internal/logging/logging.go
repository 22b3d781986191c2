// Package logging configures the process logger and carries per-request
// loggers through contexts.
package logging

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKeyLog struct{}

var base logrus.FieldLogger = logrus.StandardLogger()

// New builds a logger writing to stderr at the given level. format is "json"
// or "text"; anything else falls back to json.
func New(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Level = ParseLevel(level)
	if strings.EqualFold(format, "text") {
		logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	} else {
		logger.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
		}
	}
	return logger
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// SetDefault replaces the logger returned by FromContext when no request
// logger is present.
func SetDefault(logger logrus.FieldLogger) {
	if logger != nil {
		base = logger
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKeyLog{}, logger)
}

// FromContext returns the request logger stored in ctx or the process logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKeyLog{}).(logrus.FieldLogger); ok {
			return logger
		}
	}
	return base
}
