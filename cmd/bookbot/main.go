package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abaj8494/bookbot"
	"github.com/abaj8494/bookbot/fs"
	bookhttp "github.com/abaj8494/bookbot/http"
	"github.com/abaj8494/bookbot/ingest"
	bookslog "github.com/abaj8494/bookbot/slog"
	"github.com/abaj8494/bookbot/sqlite"
	"github.com/abaj8494/bookbot/svg"
	"github.com/abaj8494/bookbot/yaml"
	"github.com/alecthomas/kong"
)

// archiveRPS is the per-host request rate used for archive politeness.
const archiveRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and library paths. Set before calling Run().
	DBPath     string
	LibraryDir string

	// SQLite database used by the catalog service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BookService bookbot.BookService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		LibraryDir: defaultLibraryDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookbot"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bookbot --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BOOKBOT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BookService = sqlite.NewBookService(m.DB)
	deps.DB = m.DB
	deps.Books = m.BookService
	deps.Manifest = yaml.NewManifest()

	var library bookbot.Library = fs.NewLibrary(m.LibraryDir)
	var fetcher bookbot.Fetcher = bookhttp.NewFetcher()
	defer fetcher.Close()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		library = bookslog.NewLoggingLibrary(library, logger)
		fetcher = bookslog.NewLoggingFetcher(fetcher, logger)
	}
	deps.Library = library

	deps.Ingester = &ingest.Ingester{
		Fetcher:     fetcher,
		Books:       deps.Books,
		Library:     library,
		Renderer:    svg.NewRenderer(),
		Stripper:    bookbot.NewStripper(bookbot.DefaultMarkerSet()),
		Extractor:   bookbot.NewMetadataExtractor(),
		Planner:     bookbot.NewCoverPlanner(),
		RateLimiter: ingest.NewHostLimiter(archiveRPS),
	}
	if cli.Verbose {
		deps.Ingester.Log = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("BOOKBOT_DB"); path != "" {
		return path
	}
	dir := dataDir()
	return filepath.Join(dir, "bookbot.db")
}

func defaultLibraryDir() string {
	if path := os.Getenv("BOOKBOT_LIBRARY"); path != "" {
		return path
	}
	return filepath.Join(dataDir(), "library")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".bookbot")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
