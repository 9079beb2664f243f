package main

import (
	"fmt"

	"github.com/abaj8494/bookbot"
	"github.com/abaj8494/bookbot/ingest"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	source := &bookbot.Source{
		Slug:        c.Slug,
		URL:         c.URL,
		Title:       c.Title,
		Author:      c.Author,
		Description: c.Description,
	}
	if err := source.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	result, err := deps.Ingester.IngestSources(deps.Ctx, []*bookbot.Source{source}, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, "%q is already cataloged\n", c.Slug)
		return nil
	}
	if result.Failed > 0 {
		return fmt.Errorf("failed to ingest %q", c.Slug)
	}

	fmt.Fprintf(deps.Stdout, "Added %q (%s)\n", c.Slug, ingest.FormatBytes(result.Bytes))
	return nil
}

// progressPrinter reports per-document pipeline outcomes on the CLI.
func progressPrinter(deps *Dependencies) ingest.ProgressFunc {
	return func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Ingesting %d text(s)\n", event.Total)
		case ingest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  ok %s: %s\n", event.Slug, event.Title)
			if event.MissingStart {
				fmt.Fprintf(deps.Stderr, "  warn %s: no header marker found, kept from start of text\n", event.Slug)
			}
			if event.MissingEnd {
				fmt.Fprintf(deps.Stderr, "  warn %s: no footer marker found, kept to end of text\n", event.Slug)
			}
		case ingest.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s: already cataloged\n", event.Slug)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.Slug, event.Error)
		case ingest.ProgressFinished:
			// Summary printed by the command.
		}
	}
}
