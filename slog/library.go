package slog

import (
	"context"
	"log/slog"

	"github.com/abaj8494/bookbot"
)

// Ensure LoggingLibrary implements bookbot.Library.
var _ bookbot.Library = (*LoggingLibrary)(nil)

// LoggingLibrary wraps a Library with logging of writes and lifecycle
// events. Reads are left quiet.
type LoggingLibrary struct {
	next   bookbot.Library
	logger *slog.Logger
}

// NewLoggingLibrary creates a new LoggingLibrary.
func NewLoggingLibrary(next bookbot.Library, logger *slog.Logger) *LoggingLibrary {
	return &LoggingLibrary{next: next, logger: logger}
}

// SaveText delegates and logs the staged write.
func (l *LoggingLibrary) SaveText(ctx context.Context, slug, content string) error {
	err := l.next.SaveText(ctx, slug, content)
	if err != nil {
		l.logger.Error("save text", "slug", slug, "err", err)
		return err
	}
	l.logger.Info("save text", "slug", slug, "bytes", len(content))
	return nil
}

// SaveCover delegates and logs the staged write.
func (l *LoggingLibrary) SaveCover(ctx context.Context, slug string, svg []byte) error {
	err := l.next.SaveCover(ctx, slug, svg)
	if err != nil {
		l.logger.Error("save cover", "slug", slug, "err", err)
		return err
	}
	l.logger.Info("save cover", "slug", slug, "bytes", len(svg))
	return nil
}

// Texts delegates to the wrapped library.
func (l *LoggingLibrary) Texts(ctx context.Context) ([]string, error) {
	return l.next.Texts(ctx)
}

// HasCover delegates to the wrapped library.
func (l *LoggingLibrary) HasCover(ctx context.Context, slug string) (bool, error) {
	return l.next.HasCover(ctx, slug)
}

// ReadText delegates to the wrapped library.
func (l *LoggingLibrary) ReadText(ctx context.Context, slug string) (string, error) {
	return l.next.ReadText(ctx, slug)
}

// Commit delegates and logs the outcome.
func (l *LoggingLibrary) Commit() error {
	if err := l.next.Commit(); err != nil {
		l.logger.Error("library commit", "err", err)
		return err
	}
	l.logger.Info("library commit")
	return nil
}

// Abort delegates and logs the outcome.
func (l *LoggingLibrary) Abort() error {
	if err := l.next.Abort(); err != nil {
		l.logger.Error("library abort", "err", err)
		return err
	}
	l.logger.Info("library abort")
	return nil
}
