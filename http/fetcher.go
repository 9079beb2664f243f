// Package http provides an HTTP-based implementation of bookbot.Fetcher
// for downloading plain-text works from public archives.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/abaj8494/bookbot"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Full-length works run to a few megabytes, so it is more generous than
// a typical page fetch.
const DefaultFetchTimeout = 30 * time.Second

// userAgent identifies the client to the archive.
const userAgent = "bookbot/1.0 (+https://github.com/abaj8494/bookbot)"

// Ensure Fetcher implements bookbot.Fetcher at compile time.
var _ bookbot.Fetcher = (*Fetcher)(nil)

// Fetcher downloads text content from URLs using plain HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the text content at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/plain, text/*;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
