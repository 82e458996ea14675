package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
)

// Search proxies a keyword query to the catalog. Results are not persisted.
// Catalog failures are returned wrapped so callers can tell "no matches"
// (empty slice) from "catalog down" (provider.ErrUnavailable).
func (s *Service) Search(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "required")
	}
	if maxResults < 0 {
		return nil, domain.NewValidationError("max_results", "must be >= 0")
	}

	books, err := s.catalog.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	return books, nil
}
