// Package yaml loads source manifests from YAML files.
package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/abaj8494/bookbot"
	"gopkg.in/yaml.v3"
)

// Ensure Manifest implements bookbot.SourceManifest at compile time.
var _ bookbot.SourceManifest = (*Manifest)(nil)

// Manifest reads ingest sources from a YAML file of the form:
//
//	books:
//	  - slug: tale-of-2-cities
//	    url: https://www.gutenberg.org/files/98/98-0.txt
//	    description: Dickens's novel of the French Revolution.
//
// Title and author entries are optional; when absent the pipeline's
// heuristics fill them in.
type Manifest struct{}

// NewManifest creates a new Manifest loader.
func NewManifest() *Manifest {
	return &Manifest{}
}

type manifestFile struct {
	Books []*bookbot.Source `yaml:"books"`
}

// Load reads and validates the manifest at path.
func (m *Manifest) Load(ctx context.Context, path string) ([]*bookbot.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if len(file.Books) == 0 {
		return nil, bookbot.Errorf(bookbot.EINVALID, "manifest %q lists no books", path)
	}

	seen := make(map[string]bool, len(file.Books))
	for _, src := range file.Books {
		if err := src.Validate(); err != nil {
			return nil, err
		}
		if seen[src.Slug] {
			return nil, bookbot.Errorf(bookbot.EINVALID, "duplicate slug %q in manifest", src.Slug)
		}
		seen[src.Slug] = true
	}

	return file.Books, nil
}
