package provider

import "errors"

// ErrUnavailable marks a failure of an external provider (transport error,
// non-success status, open circuit breaker). It is distinct from an empty
// result, which providers report as an empty slice or a nil record.
var ErrUnavailable = errors.New("provider unavailable")

// CatalogBook is a book record from an external metadata catalog, flattened
// from the provider's nested shape. Strings default to "", lists to empty
// slices; only the numeric fields and the thumbnail are optional.
type CatalogBook struct {
	ExternalID    string
	Title         string
	Authors       []string
	Description   string
	PageCount     *int
	Categories    []string
	ThumbnailURL  *string
	PublishedDate string
	AverageRating *float64
}
