package main

import (
	"fmt"

	"github.com/abaj8494/bookbot"
	"github.com/abaj8494/bookbot/ingest"
)

// Run executes the covers command.
func (c *CoversCmd) Run(deps *Dependencies) error {
	result, err := deps.Ingester.GenerateCovers(deps.Ctx, func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Checking %d text(s) for missing covers\n", event.Total)
		case ingest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  ok %s: %s\n", event.Slug, event.Title)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.Slug, event.Error)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	if result.Ingested == 0 {
		fmt.Fprintln(deps.Stdout, "All texts already have covers.")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Generated %d cover(s), %d up to date\n", result.Ingested, result.Skipped)
	if result.Failed > 0 {
		return fmt.Errorf("%d cover(s) failed", result.Failed)
	}
	return nil
}
