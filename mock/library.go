package mock

import (
	"context"

	"github.com/abaj8494/bookbot"
)

var _ bookbot.Library = (*Library)(nil)

// Library is a mock implementation of bookbot.Library.
type Library struct {
	SaveTextFn  func(ctx context.Context, slug, content string) error
	SaveCoverFn func(ctx context.Context, slug string, svg []byte) error
	TextsFn     func(ctx context.Context) ([]string, error)
	HasCoverFn  func(ctx context.Context, slug string) (bool, error)
	ReadTextFn  func(ctx context.Context, slug string) (string, error)
	CommitFn    func() error
	AbortFn     func() error
}

func (l *Library) SaveText(ctx context.Context, slug, content string) error {
	return l.SaveTextFn(ctx, slug, content)
}

func (l *Library) SaveCover(ctx context.Context, slug string, svg []byte) error {
	return l.SaveCoverFn(ctx, slug, svg)
}

func (l *Library) Texts(ctx context.Context) ([]string, error) {
	return l.TextsFn(ctx)
}

func (l *Library) HasCover(ctx context.Context, slug string) (bool, error) {
	return l.HasCoverFn(ctx, slug)
}

func (l *Library) ReadText(ctx context.Context, slug string) (string, error) {
	return l.ReadTextFn(ctx, slug)
}

func (l *Library) Commit() error {
	if l.CommitFn == nil {
		return nil
	}
	return l.CommitFn()
}

func (l *Library) Abort() error {
	if l.AbortFn == nil {
		return nil
	}
	return l.AbortFn()
}
