// Package log provides file-backed logging for commands, errors, and
// general application information.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"prodreport/local-app/internal/model"
)

// Fields carries structured key/value pairs attached to a log entry.
type Fields map[string]any

// Logger writes JSON log entries to per-concern files: one for user
// commands, one for errors, and one for informational messages.
type Logger struct {
	commandLogger *slog.Logger
	errorLogger   *slog.Logger
	infoLogger    *slog.Logger
	commandFile   *os.File
	errorFile     *os.File
	infoFile      *os.File
	level         LogLevel
}

// NewLogger creates a Logger writing under cfg.LogFolder. Messages
// above the given level are dropped.
func NewLogger(cfg *model.Config, level LogLevel) (*Logger, error) {
	if err := os.MkdirAll(cfg.LogFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	commandFile, err := os.OpenFile(filepath.Join(cfg.LogFolder, cfg.CommandLog), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open command log file: %w", err)
	}

	errorFile, err := os.OpenFile(filepath.Join(cfg.LogFolder, cfg.ErrorLog), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		commandFile.Close()
		return nil, fmt.Errorf("failed to open error log file: %w", err)
	}

	infoFile, err := os.OpenFile(filepath.Join(cfg.LogFolder, cfg.InfoLog), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		commandFile.Close()
		errorFile.Close()
		return nil, fmt.Errorf("failed to open info log file: %w", err)
	}

	return &Logger{
		commandLogger: slog.New(slog.NewJSONHandler(commandFile, &slog.HandlerOptions{Level: slog.LevelInfo})),
		errorLogger:   slog.New(slog.NewJSONHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelError})),
		infoLogger:    slog.New(slog.NewJSONHandler(infoFile, &slog.HandlerOptions{Level: slog.LevelDebug})),
		commandFile:   commandFile,
		errorFile:     errorFile,
		infoFile:      infoFile,
		level:         level,
	}, nil
}

// Command records a user-issued command in the command log.
func (l *Logger) Command(ctx context.Context, msg string, fields Fields) {
	l.commandLogger.LogAttrs(ctx, slog.LevelInfo, msg, attrs(fields)...)
}

// Error records an error in the error log.
func (l *Logger) Error(ctx context.Context, msg string, fields Fields) {
	l.errorLogger.LogAttrs(ctx, slog.LevelError, msg, attrs(fields)...)
}

// Warn records a warning in the info log.
func (l *Logger) Warn(ctx context.Context, msg string, fields Fields) {
	if l.level < LevelWarn {
		return
	}
	l.infoLogger.LogAttrs(ctx, slog.LevelWarn, msg, attrs(fields)...)
}

// Info records an informational message in the info log.
func (l *Logger) Info(ctx context.Context, msg string, fields Fields) {
	if l.level < LevelInfo {
		return
	}
	l.infoLogger.LogAttrs(ctx, slog.LevelInfo, msg, attrs(fields)...)
}

// Debug records a debug message in the info log.
func (l *Logger) Debug(ctx context.Context, msg string, fields Fields) {
	if l.level < LevelDebug {
		return
	}
	l.infoLogger.LogAttrs(ctx, slog.LevelDebug, msg, attrs(fields)...)
}

// Close closes all log files.
func (l *Logger) Close() error {
	if err := l.commandFile.Close(); err != nil {
		return fmt.Errorf("failed to close command log file: %w", err)
	}
	if err := l.errorFile.Close(); err != nil {
		return fmt.Errorf("failed to close error log file: %w", err)
	}
	if err := l.infoFile.Close(); err != nil {
		return fmt.Errorf("failed to close info log file: %w", err)
	}
	return nil
}

func attrs(fields Fields) []slog.Attr {
	out := make([]slog.Attr, 0, len(fields))
	for key, value := range fields {
		out = append(out, slog.Any(key, value))
	}
	return out
}
