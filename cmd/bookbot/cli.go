package main

import (
	"context"
	"io"

	"github.com/abaj8494/bookbot"
	"github.com/abaj8494/bookbot/ingest"
	"github.com/abaj8494/bookbot/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Books    bookbot.BookService
	Library  bookbot.Library
	Manifest bookbot.SourceManifest
	Ingester *ingest.Ingester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and library activity"`

	Add    AddCmd    `cmd:"" help:"Fetch, clean, and catalog a single text"`
	Sync   SyncCmd   `cmd:"" help:"Ingest every text listed in a YAML manifest"`
	List   ListCmd   `cmd:"" help:"List cataloged books"`
	Show   ShowCmd   `cmd:"" help:"Show a cataloged book"`
	Delete DeleteCmd `cmd:"" help:"Delete a book from the catalog"`
	Covers CoversCmd `cmd:"" help:"Generate covers for texts that lack one"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Slug        string `arg:"" help:"Identifier used for the stored text, e.g. tale-of-2-cities"`
	URL         string `arg:"" help:"Plain-text source URL"`
	Title       string `help:"Override the derived title"`
	Author      string `help:"Override the derived author"`
	Description string `help:"Catalog description"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Manifest    string `arg:"" type:"path" help:"YAML manifest of texts to ingest"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Author string `help:"Filter by author"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug    string `arg:"" help:"Book slug"`
	Content bool   `help:"Print the stored clean text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Slug  string `arg:"" help:"Book slug"`
	Force bool   `help:"Confirm deletion"`
}

// CoversCmd is the "covers" subcommand.
type CoversCmd struct{}
