package book

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
	"github.com/heartmarshall/readlog-backend/internal/provider"
)

// maxGenreCategories is how many catalog categories make up a book's genre.
const maxGenreCategories = 2

// mapCatalogBook converts a catalog record into a new registry Book.
func mapCatalogBook(cb provider.CatalogBook) *domain.Book {
	categories := cb.Categories
	if len(categories) > maxGenreCategories {
		categories = categories[:maxGenreCategories]
	}

	coverURL := ""
	if cb.ThumbnailURL != nil {
		coverURL = *cb.ThumbnailURL
	}

	return &domain.Book{
		ID:            uuid.New(),
		GoogleBookID:  cb.ExternalID,
		Title:         cb.Title,
		Author:        strings.Join(cb.Authors, ", "),
		Genre:         strings.Join(categories, ", "),
		Pages:         cb.PageCount,
		CoverURL:      coverURL,
		Description:   cb.Description,
		PublishedDate: cb.PublishedDate,
		AverageRating: cb.AverageRating,
	}
}
