package bookbot

import "context"

// Source describes one text to ingest: where to fetch it and optional
// curated metadata that overrides the heuristics when present.
type Source struct {
	Slug        string `json:"slug" yaml:"slug"`
	URL         string `json:"url" yaml:"url"`
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Description string `json:"description" yaml:"description"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Slug == "" {
		return Errorf(EINVALID, "source slug required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	return nil
}

// SourceManifest loads the list of sources to ingest.
type SourceManifest interface {
	Load(ctx context.Context, path string) ([]*Source, error)
}
