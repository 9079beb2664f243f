package bookbot

import "context"

// Fetcher retrieves the full decoded text of a source file.
// Implementations hide transport details; decoding malformed or binary
// content is their responsibility, not the pipeline's.
type Fetcher interface {
	// Fetch downloads the text at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (text string, err error)

	// Close releases any transport resources.
	Close() error
}
