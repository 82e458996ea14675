package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating and progress bounds for a library entry.
const (
	MinRating   = 1
	MaxRating   = 5
	MinProgress = 0
	MaxProgress = 100
)

// LibraryEntry links a user to a book with reading state.
// The (UserID, BookID) pair is unique.
type LibraryEntry struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	BookID             uuid.UUID
	Book               *Book
	Status             ReadingStatus
	Rating             *int
	StartDate          *time.Time
	FinishDate         *time.Time
	Notes              string
	ProgressPercentage int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LibraryEntryUpdateParams holds the fields of a partial entry update.
// A nil pointer leaves the column unchanged; Clear* flags set it to NULL.
type LibraryEntryUpdateParams struct {
	Status             *ReadingStatus
	Rating             *int
	ClearRating        bool
	StartDate          *time.Time
	ClearStartDate     bool
	FinishDate         *time.Time
	ClearFinishDate    bool
	Notes              *string
	ProgressPercentage *int
}

// IsEmpty reports whether no field is set.
func (p LibraryEntryUpdateParams) IsEmpty() bool {
	return p.Status == nil && p.Rating == nil && !p.ClearRating &&
		p.StartDate == nil && !p.ClearStartDate &&
		p.FinishDate == nil && !p.ClearFinishDate &&
		p.Notes == nil && p.ProgressPercentage == nil
}

// LibraryFilter restricts and pages a user's library listing.
type LibraryFilter struct {
	Status *ReadingStatus
	Limit  int
	Offset int
}
