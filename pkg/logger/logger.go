package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level string
	// Output defaults to stderr so log records stay off the interactive
	// console on stdout.
	Output io.Writer
}

type Logger struct {
	logger *slog.Logger
}

func NewLogger(cfg *Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: getLoggerLevel(cfg.Level),
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(out, opts))
	return &Logger{
		logger: logger,
	}
}

// OpenFile opens path for appending log records. An empty path means stderr.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func (l *Logger) Error(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}
func (l *Logger) Info(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func getLoggerLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
