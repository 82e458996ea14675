// Package book implements the book registry: a deduplicated set of books
// keyed by external catalog id, plus public CRUD and catalog pass-through.
package book

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
)

type bookRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	GetByGoogleID(ctx context.Context, googleBookID string) (*domain.Book, error)
	List(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, error)
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, id uuid.UUID, params domain.BookUpdateParams) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type catalogProvider interface {
	Search(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error)
	FetchByID(ctx context.Context, externalID string) (*provider.CatalogBook, error)
}

// Service implements book registry operations.
type Service struct {
	log     *slog.Logger
	books   bookRepo
	tx      txManager
	catalog catalogProvider
	now     func() time.Time
}

// NewService creates a new Book service.
func NewService(
	logger *slog.Logger,
	books bookRepo,
	tx txManager,
	catalog catalogProvider,
) *Service {
	return &Service{
		log:     logger.With("service", "book"),
		books:   books,
		tx:      tx,
		catalog: catalog,
		now:     time.Now,
	}
}
