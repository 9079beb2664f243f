package main

import (
	"fmt"

	"github.com/abaj8494/bookbot"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	book, err := deps.Books.FindBookBySlug(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Slug:    %s\n", book.Slug)
	fmt.Fprintf(deps.Stdout, "Title:   %s\n", book.Title)
	fmt.Fprintf(deps.Stdout, "Author:  %s\n", book.Author)
	if book.Description != "" {
		fmt.Fprintf(deps.Stdout, "About:   %s\n", book.Description)
	}
	fmt.Fprintf(deps.Stdout, "Hash:    %s\n", book.ContentHash)
	fmt.Fprintf(deps.Stdout, "Added:   %s\n", book.AddedAt.Format("2006-01-02 15:04:05"))

	if c.Content {
		text, err := deps.Library.ReadText(deps.Ctx, book.Slug)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bookbot.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\n%s\n", text)
	}
	return nil
}
