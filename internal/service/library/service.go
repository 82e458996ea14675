// Package library implements a user's book library: per-user entries with
// reading state, yearly statistics and genre-based recommendations.
// Every operation takes the owning user's id explicitly.
package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/config"
	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
)

type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.LibraryEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.LibraryFilter) ([]*domain.LibraryEntry, error)
	Create(ctx context.Context, e *domain.LibraryEntry) (*domain.LibraryEntry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, params domain.LibraryEntryUpdateParams) (*domain.LibraryEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type statsRepo interface {
	CompletedSummary(ctx context.Context, userID uuid.UUID, year int) (domain.CompletedSummary, error)
	GenreCounts(ctx context.Context, userID uuid.UUID, year, limit int) ([]domain.GenreCount, error)
	MonthlyCompleted(ctx context.Context, userID uuid.UUID, year int) (map[int]int, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ReadingStatus]int, error)
	FavoriteGenres(ctx context.Context, userID uuid.UUID, minRating, limit int) ([]domain.GenreCount, error)
}

type catalogSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error)
}

// Service provides user library operations.
type Service struct {
	entries entryRepo
	stats   statsRepo
	catalog catalogSearcher
	cfg     config.LibraryConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Library service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	stats statsRepo,
	catalog catalogSearcher,
	cfg config.LibraryConfig,
) *Service {
	return &Service{
		entries: entries,
		stats:   stats,
		catalog: catalog,
		cfg:     cfg,
		log:     log.With("service", "library"),
		now:     time.Now,
	}
}
