package mock

import (
	"context"

	"github.com/abaj8494/bookbot"
)

var _ bookbot.BookService = (*BookService)(nil)

// BookService is a mock implementation of bookbot.BookService.
type BookService struct {
	CreateBookFn     func(ctx context.Context, book *bookbot.Book) error
	FindBookByIDFn   func(ctx context.Context, id string) (*bookbot.Book, error)
	FindBookBySlugFn func(ctx context.Context, slug string) (*bookbot.Book, error)
	FindBooksFn      func(ctx context.Context, filter bookbot.BookFilter) ([]*bookbot.Book, error)
	UpdateBookFn     func(ctx context.Context, id string, upd bookbot.BookUpdate) (*bookbot.Book, error)
	DeleteBookFn     func(ctx context.Context, id string) error
}

func (s *BookService) CreateBook(ctx context.Context, book *bookbot.Book) error {
	return s.CreateBookFn(ctx, book)
}

func (s *BookService) FindBookByID(ctx context.Context, id string) (*bookbot.Book, error) {
	return s.FindBookByIDFn(ctx, id)
}

func (s *BookService) FindBookBySlug(ctx context.Context, slug string) (*bookbot.Book, error) {
	return s.FindBookBySlugFn(ctx, slug)
}

func (s *BookService) FindBooks(ctx context.Context, filter bookbot.BookFilter) ([]*bookbot.Book, error) {
	return s.FindBooksFn(ctx, filter)
}

func (s *BookService) UpdateBook(ctx context.Context, id string, upd bookbot.BookUpdate) (*bookbot.Book, error) {
	return s.UpdateBookFn(ctx, id, upd)
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	return s.DeleteBookFn(ctx, id)
}
