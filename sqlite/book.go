package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/abaj8494/bookbot"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bookbot.BookService = (*BookService)(nil)

// BookService implements bookbot.BookService using SQLite.
type BookService struct {
	db *DB
}

// NewBookService creates a new BookService.
func NewBookService(db *DB) *BookService {
	return &BookService{db: db}
}

// CreateBook inserts a new catalog record with a generated ID.
func (s *BookService) CreateBook(ctx context.Context, book *bookbot.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	book.ID = uuid.New().String()
	book.AddedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO books (id, slug, title, author, description, content_hash, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, book.ID, book.Slug, book.Title, book.Author, book.Description,
		book.ContentHash, book.AddedAt.Format(time.RFC3339))

	return err
}

// FindBookByID retrieves a book by ID.
func (s *BookService) FindBookByID(ctx context.Context, id string) (*bookbot.Book, error) {
	return s.findOne(ctx, "id = ?", id)
}

// FindBookBySlug retrieves a book by slug.
func (s *BookService) FindBookBySlug(ctx context.Context, slug string) (*bookbot.Book, error) {
	return s.findOne(ctx, "slug = ?", slug)
}

func (s *BookService) findOne(ctx context.Context, where string, arg any) (*bookbot.Book, error) {
	var book bookbot.Book
	var addedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, author, description, content_hash, added_at
		FROM books
		WHERE `+where,
		arg).Scan(&book.ID, &book.Slug, &book.Title, &book.Author,
		&book.Description, &book.ContentHash, &addedAt)

	if err == sql.ErrNoRows {
		return nil, bookbot.Errorf(bookbot.ENOTFOUND, "book not found")
	}
	if err != nil {
		return nil, err
	}

	book.AddedAt, err = parseRFC3339(addedAt, "added_at")
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// FindBooks retrieves books matching the filter, ordered by title.
func (s *BookService) FindBooks(ctx context.Context, filter bookbot.BookFilter) ([]*bookbot.Book, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, slug, title, author, description, content_hash, added_at
		FROM books
		WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Author != nil {
		query.WriteString(" AND author = ?")
		args = append(args, *filter.Author)
	}

	query.WriteString(" ORDER BY title ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []*bookbot.Book{}
	for rows.Next() {
		var book bookbot.Book
		var addedAt string

		if err := rows.Scan(&book.ID, &book.Slug, &book.Title, &book.Author,
			&book.Description, &book.ContentHash, &addedAt); err != nil {
			return nil, err
		}

		book.AddedAt, err = parseRFC3339(addedAt, "added_at")
		if err != nil {
			return nil, err
		}

		books = append(books, &book)
	}

	return books, rows.Err()
}

// UpdateBook updates an existing book's metadata.
func (s *BookService) UpdateBook(ctx context.Context, id string, upd bookbot.BookUpdate) (*bookbot.Book, error) {
	book, err := s.FindBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		book.Title = *upd.Title
	}
	if upd.Author != nil {
		book.Author = *upd.Author
	}
	if upd.Description != nil {
		book.Description = *upd.Description
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE books SET title = ?, author = ?, description = ?
		WHERE id = ?
	`, book.Title, book.Author, book.Description, id)
	if err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook permanently removes a book from the catalog.
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return bookbot.Errorf(bookbot.ENOTFOUND, "book not found")
	}

	return nil
}
