package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/readlog-backend/internal/provider"
)

// Recommendations suggests catalog books from the user's favourite genres:
// the genres most often completed with a high rating. Each genre
// contributes at most RecommendationsPerGenre results, in genre rank order,
// capped at RecommendationsMax overall. A user without qualifying entries
// gets an empty list and the catalog is not called. A genre whose search
// fails is logged and skipped.
func (s *Service) Recommendations(ctx context.Context, userID uuid.UUID) ([]provider.CatalogBook, error) {
	genres, err := s.stats.FavoriteGenres(ctx, userID, s.cfg.RecommendationMinRating, s.cfg.RecommendationGenres)
	if err != nil {
		return nil, fmt.Errorf("favorite genres: %w", err)
	}
	if len(genres) == 0 {
		return []provider.CatalogBook{}, nil
	}

	perGenre := make([][]provider.CatalogBook, len(genres))

	var g errgroup.Group
	for i, gc := range genres {
		g.Go(func() error {
			books, err := s.catalog.Search(ctx, "subject:"+gc.Genre, s.cfg.RecommendationSearchSize)
			if err != nil {
				s.log.WarnContext(ctx, "recommendation search failed",
					slog.String("user_id", userID.String()),
					slog.String("genre", gc.Genre),
					slog.String("error", err.Error()),
				)
				return nil
			}
			if len(books) > s.cfg.RecommendationsPerGenre {
				books = books[:s.cfg.RecommendationsPerGenre]
			}
			perGenre[i] = books
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]provider.CatalogBook, 0, s.cfg.RecommendationsMax)
	for _, books := range perGenre {
		for _, b := range books {
			if len(out) == s.cfg.RecommendationsMax {
				return out, nil
			}
			out = append(out, b)
		}
	}

	return out, nil
}
