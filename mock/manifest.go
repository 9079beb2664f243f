package mock

import (
	"context"

	"github.com/abaj8494/bookbot"
)

var _ bookbot.SourceManifest = (*SourceManifest)(nil)

// SourceManifest is a mock implementation of bookbot.SourceManifest.
type SourceManifest struct {
	LoadFn func(ctx context.Context, path string) ([]*bookbot.Source, error)
}

func (m *SourceManifest) Load(ctx context.Context, path string) ([]*bookbot.Source, error) {
	return m.LoadFn(ctx, path)
}
