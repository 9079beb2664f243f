package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/abaj8494/bookbot"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := bookbot.BookFilter{}
	if c.Author != "" {
		filter.Author = &c.Author
	}

	books, err := deps.Books.FindBooks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	if len(books) == 0 {
		fmt.Fprintln(deps.Stdout, "No books found. Use 'bookbot add' or 'bookbot sync' to ingest texts.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tAUTHOR")
	for _, book := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\n", book.Slug, book.Title, book.Author)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\n%d book(s)\n", len(books))
	return nil
}
