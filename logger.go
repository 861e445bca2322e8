package glovego

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with glovego-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCorpus adds a corpus name field to the logger.
func (l *Logger) WithCorpus(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("corpus", name),
	}
}

// WithArtifact adds an artifact name field to the logger.
func (l *Logger) WithArtifact(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("artifact", name),
	}
}

// LogVocabBuild logs a vocabulary build.
func (l *Logger) LogVocabBuild(ctx context.Context, corpus string, words int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "vocabulary build failed",
			"corpus", corpus,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "vocabulary built",
			"corpus", corpus,
			"words", words,
		)
	}
}

// LogIngest logs a co-occurrence accumulation pass.
func (l *Logger) LogIngest(ctx context.Context, corpus string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "co-occurrence ingest failed",
			"corpus", corpus,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "co-occurrence accumulated",
			"corpus", corpus,
			"records", records,
		)
	}
}

// LogEpoch logs a completed training epoch.
func (l *Logger) LogEpoch(ctx context.Context, epoch, epochs, records int, elapsed time.Duration) {
	l.InfoContext(ctx, "epoch completed",
		"epoch", epoch,
		"epochs", epochs,
		"records", records,
		"elapsed", elapsed,
	)
}

// LogExport logs an artifact export.
func (l *Logger) LogExport(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"artifact", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "artifact exported",
			"artifact", name,
		)
	}
}
