package book

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

// List returns registry books matching the input filter, newest first.
func (s *Service) List(ctx context.Context, input ListBooksInput) ([]*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	books, err := s.books.List(ctx, domain.BookFilter{
		Search: input.Search,
		Genre:  input.Genre,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Get returns a registry book by id.
func (s *Service) Get(ctx context.Context, bookID uuid.UUID) (*domain.Book, error) {
	return s.books.GetByID(ctx, bookID)
}

// Create registers a book from client-supplied fields.
// Returns domain.ErrAlreadyExists when the external id is taken.
func (s *Service) Create(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	book, err := s.books.Create(ctx, &domain.Book{
		ID:            uuid.New(),
		GoogleBookID:  strings.TrimSpace(input.GoogleBookID),
		Title:         strings.TrimSpace(input.Title),
		Author:        input.Author,
		Genre:         input.Genre,
		Pages:         input.Pages,
		CoverURL:      input.CoverURL,
		Description:   input.Description,
		PublishedDate: input.PublishedDate,
		AverageRating: input.AverageRating,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.log.InfoContext(ctx, "book created",
		slog.String("book_id", book.ID.String()),
		slog.String("google_book_id", book.GoogleBookID),
	)

	return book, nil
}

// Update applies a partial update to a registry book.
func (s *Service) Update(ctx context.Context, input UpdateBookInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	book, err := s.books.Update(ctx, input.BookID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return book, nil
}

// Delete removes a registry book together with every library entry using it.
func (s *Service) Delete(ctx context.Context, bookID uuid.UUID) error {
	if err := s.books.Delete(ctx, bookID); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	s.log.InfoContext(ctx, "book deleted", slog.String("book_id", bookID.String()))
	return nil
}
