package domain

import (
	"time"

	"github.com/google/uuid"
)

// Book is a registry entry, unique by its external catalog id.
type Book struct {
	ID            uuid.UUID
	GoogleBookID  string
	Title         string
	Author        string
	Genre         string
	Pages         *int
	CoverURL      string
	Description   string
	PublishedDate string
	AverageRating *float64
	CreatedAt     time.Time
}

// BookUpdateParams holds the fields of a partial book update.
// A nil field is left unchanged. ClearPages and ClearAverageRating set the
// corresponding column to NULL.
type BookUpdateParams struct {
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

// IsEmpty reports whether no field is set.
func (p BookUpdateParams) IsEmpty() bool {
	return p.GoogleBookID == nil && p.Title == nil && p.Author == nil && p.Genre == nil &&
		p.Pages == nil && !p.ClearPages && p.CoverURL == nil && p.Description == nil &&
		p.PublishedDate == nil && p.AverageRating == nil && !p.ClearAverageRating
}
