package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

// Logger is the leveled logger injected into every pipeline component.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

type implLogger struct {
	logger *log.Logger
	level  int
}

// New creates a new Logger instance. Unknown levels default to info.
func New(level string) Logger {
	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  parseLevel(level),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l *implLogger) log(level int, prefix, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.logger.Printf(prefix+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log(levelDebug, "[DEBUG] ", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log(levelInfo, "[INFO] ", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log(levelWarn, "[WARN] ", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log(levelError, "[ERROR] ", msg, args...)
}
