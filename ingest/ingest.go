// Package ingest orchestrates the book ingestion pipeline.
// It coordinates fetching, boilerplate stripping, normalization,
// metadata recovery, cover planning, and persistence of each source.
package ingest

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/abaj8494/bookbot"
	"golang.org/x/sync/errgroup"
)

// Ingester runs the pipeline for batches of sources.
// Per-document heuristic failures degrade to fallback values and are
// reported through the progress callback; they never abort the batch.
type Ingester struct {
	Fetcher     bookbot.Fetcher
	Books       bookbot.BookService
	Library     bookbot.Library
	Renderer    bookbot.CoverRenderer
	Stripper    *bookbot.Stripper
	Extractor   *bookbot.MetadataExtractor
	Planner     *bookbot.CoverPlanner
	RateLimiter bookbot.HostLimiter
	Concurrency int
	RetryDelays []time.Duration

	// Log, when set, receives retry attempt messages.
	Log LogFunc
}

// Result holds the outcome of an ingest run.
type Result struct {
	Ingested int
	Skipped  int
	Failed   int
	Bytes    int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an ingest run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Slug      string
	Title     string
	Error     error

	// MissingStart and MissingEnd flag degraded boundary detection:
	// the document was still ingested, from its natural edge.
	MissingStart bool
	MissingEnd   bool
}

// ProgressFunc is a callback for reporting ingest progress.
type ProgressFunc func(event ProgressEvent)

// ingestResult holds the outcome of processing a single source.
type ingestResult struct {
	position int
	source   *bookbot.Source
	clean    string
	meta     bookbot.Metadata
	boundary bookbot.BoundaryResult
	cover    []byte
	skipped  bool
	err      error
}

// IngestSources fetches, cleans, and catalogs each source.
// Sources already present in the catalog are skipped. Pending library
// writes are committed once every surviving source has been persisted,
// and aborted if the run fails before that point.
func (ing *Ingester) IngestSources(ctx context.Context, sources []*bookbot.Source, progress ProgressFunc) (*Result, error) {
	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(sources)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan ingestResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, src := range sources {
			i, src := i, src
			g.Go(func() error {
				resultCh <- ing.process(gctx, i, src)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in position order.
	results := make([]ingestResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed:    int(completed.Load()),
			Total:        total,
			Slug:         result.source.Slug,
			Title:        result.meta.Title,
			Error:        result.err,
			MissingStart: !result.skipped && result.err == nil && !result.boundary.StartFound,
			MissingEnd:   !result.skipped && result.err == nil && !result.boundary.EndFound,
		}
		switch {
		case result.err != nil:
			event.Type = ProgressFailed
		case result.skipped:
			event.Type = ProgressSkipped
		default:
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		_ = ing.Library.Abort()
		return nil, err
	}

	// Persist the surviving documents.
	var res Result
	for _, result := range results {
		switch {
		case result.err != nil:
			res.Failed++
			continue
		case result.skipped:
			res.Skipped++
			continue
		}

		if err := ing.persist(ctx, &result); err != nil {
			res.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: total,
					Total:     total,
					Slug:      result.source.Slug,
					Title:     result.meta.Title,
					Error:     err,
				})
			}
			continue
		}
		res.Ingested++
		res.Bytes += len(result.clean)
	}

	if err := ing.Library.Commit(); err != nil {
		_ = ing.Library.Abort()
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &res, nil
}

// process runs the fetch and the pure pipeline for one source.
func (ing *Ingester) process(ctx context.Context, position int, src *bookbot.Source) ingestResult {
	result := ingestResult{position: position, source: src}

	// Skip sources already in the catalog.
	if _, err := ing.Books.FindBookBySlug(ctx, src.Slug); err == nil {
		result.skipped = true
		return result
	} else if bookbot.ErrorCode(err) != bookbot.ENOTFOUND {
		result.err = err
		return result
	}

	if ing.RateLimiter != nil {
		u, err := url.Parse(src.URL)
		if err != nil {
			result.err = err
			return result
		}
		if err := ing.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	raw, err := ing.fetch(ctx, src.URL)
	if err != nil {
		result.err = err
		return result
	}

	// The pure pipeline: boundary strip, whitespace normalize, metadata.
	sliced, boundary := ing.Stripper.Strip(raw)
	result.clean = bookbot.Normalize(sliced)
	result.boundary = boundary
	result.meta = ing.Extractor.Extract(src.Slug, result.clean)

	// Curated manifest metadata overrides the heuristics.
	if src.Title != "" {
		result.meta.Title = src.Title
	}
	if src.Author != "" {
		result.meta.Author = src.Author
	}

	layout := ing.Planner.Plan(result.meta.Title, result.meta.Author)
	result.cover, err = ing.Renderer.Render(layout)
	if err != nil {
		result.err = err
		return result
	}

	return result
}

// fetch downloads a source with retry, honoring configured delays.
func (ing *Ingester) fetch(ctx context.Context, url string) (string, error) {
	if ing.RetryDelays == nil {
		return FetchWithRetry(ctx, url, ing.Fetcher.Fetch, ing.Log)
	}
	return FetchWithRetryDelays(ctx, url, ing.Fetcher.Fetch, ing.Log, ing.RetryDelays)
}

// persist stages the clean text and cover and records the catalog entry.
func (ing *Ingester) persist(ctx context.Context, result *ingestResult) error {
	if err := ing.Library.SaveText(ctx, result.source.Slug, result.clean); err != nil {
		return err
	}
	if err := ing.Library.SaveCover(ctx, result.source.Slug, result.cover); err != nil {
		return err
	}

	book := &bookbot.Book{
		Slug:        result.source.Slug,
		Title:       result.meta.Title,
		Author:      result.meta.Author,
		Description: result.source.Description,
		ContentHash: HashContent(result.clean),
	}
	return ing.Books.CreateBook(ctx, book)
}

// GenerateCovers renders covers for committed texts that lack one.
// Metadata comes from the catalog when the slug is recorded there, and
// from the filename/leading-content heuristics otherwise.
func (ing *Ingester) GenerateCovers(ctx context.Context, progress ProgressFunc) (*Result, error) {
	slugs, err := ing.Library.Texts(ctx)
	if err != nil {
		return nil, err
	}

	total := len(slugs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var res Result
	for i, slug := range slugs {
		if err := ctx.Err(); err != nil {
			_ = ing.Library.Abort()
			return nil, err
		}

		has, err := ing.Library.HasCover(ctx, slug)
		if err != nil {
			_ = ing.Library.Abort()
			return nil, err
		}
		if has {
			res.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: total, Slug: slug})
			}
			continue
		}

		meta, err := ing.coverMetadata(ctx, slug)
		if err != nil {
			res.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, Slug: slug, Error: err})
			}
			continue
		}

		layout := ing.Planner.Plan(meta.Title, meta.Author)
		cover, err := ing.Renderer.Render(layout)
		if err != nil {
			res.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, Slug: slug, Error: err})
			}
			continue
		}

		if err := ing.Library.SaveCover(ctx, slug, cover); err != nil {
			res.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: total, Slug: slug, Error: err})
			}
			continue
		}

		res.Ingested++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, Slug: slug, Title: meta.Title})
		}
	}

	if err := ing.Library.Commit(); err != nil {
		_ = ing.Library.Abort()
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &res, nil
}

// coverMetadata resolves display metadata for a committed text.
func (ing *Ingester) coverMetadata(ctx context.Context, slug string) (bookbot.Metadata, error) {
	if book, err := ing.Books.FindBookBySlug(ctx, slug); err == nil {
		return bookbot.Metadata{Title: book.Title, Author: book.Author}, nil
	} else if bookbot.ErrorCode(err) != bookbot.ENOTFOUND {
		return bookbot.Metadata{}, err
	}

	content, err := ing.Library.ReadText(ctx, slug)
	if err != nil {
		return bookbot.Metadata{}, err
	}
	return ing.Extractor.Extract(slug, content), nil
}
