package book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
)

// GetOrCreate returns the registry book for the catalog record's external id,
// creating it on first use. An existing book is returned unchanged; its fields
// are never refreshed from the catalog. If a concurrent insert wins the race,
// the stored row is returned.
func (s *Service) GetOrCreate(ctx context.Context, cb provider.CatalogBook) (*domain.Book, error) {
	if strings.TrimSpace(cb.ExternalID) == "" {
		return nil, domain.NewValidationError("google_book_id", "required")
	}

	existing, err := s.books.GetByGoogleID(ctx, cb.ExternalID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get book by google id: %w", err)
	}

	book := mapCatalogBook(cb)
	book.CreatedAt = s.now().UTC()

	var saved *domain.Book
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		saved, createErr = s.books.Create(txCtx, book)
		return createErr
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			existing, err := s.books.GetByGoogleID(ctx, cb.ExternalID)
			if err != nil {
				return nil, fmt.Errorf("get book after conflict: %w", err)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("create book: %w", txErr)
	}

	s.log.InfoContext(ctx, "book registered",
		slog.String("google_book_id", saved.GoogleBookID),
		slog.String("book_id", saved.ID.String()),
	)

	return saved, nil
}

// AddFromCatalog fetches a volume from the catalog and registers it.
// Returns ErrCatalogBookNotFound when the catalog does not know the id and
// an error wrapping provider.ErrUnavailable when the catalog is down.
func (s *Service) AddFromCatalog(ctx context.Context, googleBookID string) (*domain.Book, error) {
	googleBookID = strings.TrimSpace(googleBookID)
	if googleBookID == "" {
		return nil, domain.NewValidationError("google_book_id", "required")
	}

	cb, err := s.catalog.FetchByID(ctx, googleBookID)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog fetch failed",
			slog.String("google_book_id", googleBookID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fetch catalog book: %w", err)
	}
	if cb == nil {
		return nil, ErrCatalogBookNotFound
	}

	return s.GetOrCreate(ctx, *cb)
}
