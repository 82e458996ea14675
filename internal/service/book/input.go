package book

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

const (
	maxGoogleBookIDLen = 64
	maxTitleLen        = 500
	maxListLimit       = 200
)

// CreateBookInput holds the parameters for registering a book by hand.
type CreateBookInput struct {
	GoogleBookID  string
	Title         string
	Author        string
	Genre         string
	Pages         *int
	CoverURL      string
	Description   string
	PublishedDate string
	AverageRating *float64
}

// Validate checks all fields and collects all errors.
func (i CreateBookInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateGoogleBookID(i.GoogleBookID)...)
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validatePages(i.Pages)...)
	errs = append(errs, validateAverageRating(i.AverageRating)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateBookInput holds the parameters for a partial book update.
// nil fields are left unchanged.
type UpdateBookInput struct {
	BookID             uuid.UUID
	GoogleBookID       *string
	Title              *string
	Author             *string
	Genre              *string
	Pages              *int
	ClearPages         bool
	CoverURL           *string
	Description        *string
	PublishedDate      *string
	AverageRating      *float64
	ClearAverageRating bool
}

// Validate checks all fields and collects all errors.
func (i UpdateBookInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.GoogleBookID != nil {
		errs = append(errs, validateGoogleBookID(*i.GoogleBookID)...)
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	errs = append(errs, validatePages(i.Pages)...)
	errs = append(errs, validateAverageRating(i.AverageRating)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateBookInput) params() domain.BookUpdateParams {
	return domain.BookUpdateParams{
		GoogleBookID:       trimPtr(i.GoogleBookID),
		Title:              trimPtr(i.Title),
		Author:             i.Author,
		Genre:              i.Genre,
		Pages:              i.Pages,
		ClearPages:         i.ClearPages,
		CoverURL:           i.CoverURL,
		Description:        i.Description,
		PublishedDate:      i.PublishedDate,
		AverageRating:      i.AverageRating,
		ClearAverageRating: i.ClearAverageRating,
	}
}

// ListBooksInput holds the parameters for listing the registry.
type ListBooksInput struct {
	Search *string
	Genre  *string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListBooksInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateGoogleBookID(id string) []domain.FieldError {
	id = strings.TrimSpace(id)
	if id == "" {
		return []domain.FieldError{{Field: "google_book_id", Message: "required"}}
	}
	if len(id) > maxGoogleBookIDLen {
		return []domain.FieldError{{Field: "google_book_id", Message: "max 64 characters"}}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(title) > maxTitleLen {
		return []domain.FieldError{{Field: "title", Message: "max 500 characters"}}
	}
	return nil
}

func validatePages(pages *int) []domain.FieldError {
	if pages != nil && *pages < 0 {
		return []domain.FieldError{{Field: "pages", Message: "must be >= 0"}}
	}
	return nil
}

func validateAverageRating(rating *float64) []domain.FieldError {
	if rating != nil && (*rating < 0 || *rating > 5) {
		return []domain.FieldError{{Field: "average_rating", Message: "must be between 0 and 5"}}
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
