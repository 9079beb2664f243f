package bookbot

import (
	"context"
	"time"
)

// Book represents one cataloged work: the display metadata recovered by
// the pipeline plus bookkeeping fields. The clean text itself is
// persisted by the Library, keyed by Slug; only its hash is kept here.
type Book struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	ContentHash string    `json:"contentHash"`
	AddedAt     time.Time `json:"addedAt"`
}

// Validate returns an error if the book contains invalid fields.
func (b *Book) Validate() error {
	if b.Slug == "" {
		return Errorf(EINVALID, "book slug required")
	}
	if b.Title == "" {
		return Errorf(EINVALID, "book title required")
	}
	return nil
}

// BookService represents a service for managing the book catalog.
type BookService interface {
	// CreateBook inserts a new catalog record.
	CreateBook(ctx context.Context, book *Book) error

	// FindBookByID retrieves a book by ID.
	// Returns ENOTFOUND if the book does not exist.
	FindBookByID(ctx context.Context, id string) (*Book, error)

	// FindBookBySlug retrieves a book by its slug.
	// Returns ENOTFOUND if the book does not exist.
	FindBookBySlug(ctx context.Context, slug string) (*Book, error)

	// FindBooks retrieves books matching the filter.
	FindBooks(ctx context.Context, filter BookFilter) ([]*Book, error)

	// UpdateBook updates an existing book.
	// Returns ENOTFOUND if the book does not exist.
	UpdateBook(ctx context.Context, id string, upd BookUpdate) (*Book, error)

	// DeleteBook permanently removes a book from the catalog.
	// Returns ENOTFOUND if the book does not exist.
	DeleteBook(ctx context.Context, id string) error
}

// BookFilter represents a filter for FindBooks.
type BookFilter struct {
	ID     *string `json:"id"`
	Slug   *string `json:"slug"`
	Author *string `json:"author"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BookUpdate represents fields that can be updated on a book.
type BookUpdate struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
}
