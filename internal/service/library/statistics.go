package library

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

// Statistics computes the user's reading report for year. Completion
// figures cover entries completed with a finish date in year; the
// currently-reading and want-to-read counts cover the whole library.
// year == 0 selects the current calendar year in UTC.
func (s *Service) Statistics(ctx context.Context, userID uuid.UUID, year int) (*domain.ReadingStats, error) {
	if year == 0 {
		year = s.now().UTC().Year()
	}
	if year < 1 || year > 9999 {
		return nil, domain.NewValidationError("year", "must be between 1 and 9999")
	}

	var (
		summary  domain.CompletedSummary
		genres   []domain.GenreCount
		monthly  map[int]int
		byStatus map[domain.ReadingStatus]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = s.stats.CompletedSummary(gctx, userID, year)
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = s.stats.GenreCounts(gctx, userID, year, s.cfg.StatsTopGenres)
		return err
	})
	g.Go(func() error {
		var err error
		monthly, err = s.stats.MonthlyCompleted(gctx, userID, year)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = s.stats.CountByStatus(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reading statistics: %w", err)
	}

	if genres == nil {
		genres = []domain.GenreCount{}
	}

	return &domain.ReadingStats{
		Year:                  year,
		TotalBooksCompleted:   summary.Books,
		TotalPagesRead:        summary.Pages,
		AverageRating:         round2(summary.AverageRating),
		GenreDistribution:     genres,
		MonthlyReading:        domain.MonthlyFromCounts(monthly),
		CurrentlyReadingCount: byStatus[domain.ReadingStatusReading],
		WantToReadCount:       byStatus[domain.ReadingStatusWantToRead],
	}, nil
}

// round2 rounds to two decimal places; nil stays nil.
func round2(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*100) / 100
	return &r
}
