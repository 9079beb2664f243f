package main

import (
	"fmt"

	"github.com/abaj8494/bookbot"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	book, err := deps.Books.FindBookBySlug(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	if !c.Force {
		err := bookbot.Errorf(bookbot.EINVALID, "deleting %q removes it from the catalog; re-run with --force to confirm", book.Slug)
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	if err := deps.Books.DeleteBook(deps.Ctx, book.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", book.Slug)
	return nil
}
