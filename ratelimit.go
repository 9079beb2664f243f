package bookbot

import "context"

// HostLimiter rate limits requests per archive host, so batch ingest
// stays polite to the public mirrors it downloads from.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, host string) error
}
