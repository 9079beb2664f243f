package main

import (
	"fmt"

	"github.com/abaj8494/bookbot"
	"github.com/abaj8494/bookbot/ingest"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	sources, err := deps.Manifest.Load(deps.Ctx, c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Syncing %d source(s) from %s\n", len(sources), c.Manifest)

	deps.Ingester.Concurrency = c.Concurrency
	result, err := deps.Ingester.IngestSources(deps.Ctx, sources, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d ingested, %d skipped, %d failed (%s)\n",
		result.Ingested, result.Skipped, result.Failed, ingest.FormatBytes(result.Bytes))
	if result.Failed > 0 {
		return fmt.Errorf("%d source(s) failed", result.Failed)
	}
	return nil
}
