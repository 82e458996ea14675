package library

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

const (
	maxNotesLen  = 10000
	maxListLimit = 200
)

// CreateEntryInput holds the parameters for adding a book to a library.
// An empty Status means want_to_read; nil ProgressPercentage means 0.
type CreateEntryInput struct {
	BookID             uuid.UUID
	Status             domain.ReadingStatus
	Rating             *int
	StartDate          *time.Time
	FinishDate         *time.Time
	Notes              string
	ProgressPercentage *int
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of want_to_read, reading, completed"})
	}
	errs = append(errs, validateRating(i.Rating)...)
	errs = append(errs, validateProgress(i.ProgressPercentage)...)
	errs = append(errs, validateNotes(&i.Notes)...)
	errs = append(errs, validateDateOrder(i.StartDate, i.FinishDate)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEntryInput holds the parameters for a partial entry update.
// nil fields are left unchanged; Clear* flags reset optional fields.
type UpdateEntryInput struct {
	EntryID            uuid.UUID
	Status             *domain.ReadingStatus
	Rating             *int
	ClearRating        bool
	StartDate          *time.Time
	ClearStartDate     bool
	FinishDate         *time.Time
	ClearFinishDate    bool
	Notes              *string
	ProgressPercentage *int
}

// Validate checks all fields independently and collects all errors.
// Date ordering against stored values is checked by the service.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of want_to_read, reading, completed"})
	}
	errs = append(errs, validateRating(i.Rating)...)
	errs = append(errs, validateProgress(i.ProgressPercentage)...)
	errs = append(errs, validateNotes(i.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateEntryInput) touchesDates() bool {
	return i.StartDate != nil || i.FinishDate != nil
}

func (i UpdateEntryInput) params() domain.LibraryEntryUpdateParams {
	return domain.LibraryEntryUpdateParams{
		Status:             i.Status,
		Rating:             i.Rating,
		ClearRating:        i.ClearRating,
		StartDate:          i.StartDate,
		ClearStartDate:     i.ClearStartDate,
		FinishDate:         i.FinishDate,
		ClearFinishDate:    i.ClearFinishDate,
		Notes:              i.Notes,
		ProgressPercentage: i.ProgressPercentage,
	}
}

// ListEntriesInput holds the parameters for listing a library.
type ListEntriesInput struct {
	Status *domain.ReadingStatus
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of want_to_read, reading, completed"})
	}
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

func validateRating(rating *int) []domain.FieldError {
	if rating != nil && (*rating < domain.MinRating || *rating > domain.MaxRating) {
		return []domain.FieldError{{Field: "rating", Message: "must be between 1 and 5"}}
	}
	return nil
}

func validateProgress(progress *int) []domain.FieldError {
	if progress != nil && (*progress < domain.MinProgress || *progress > domain.MaxProgress) {
		return []domain.FieldError{{Field: "progress_percentage", Message: "must be between 0 and 100"}}
	}
	return nil
}

func validateNotes(notes *string) []domain.FieldError {
	if notes != nil && len(*notes) > maxNotesLen {
		return []domain.FieldError{{Field: "notes", Message: "max 10000 characters"}}
	}
	return nil
}

func validateDateOrder(start, finish *time.Time) []domain.FieldError {
	if start != nil && finish != nil && finish.Before(*start) {
		return []domain.FieldError{{Field: "finish_date", Message: "must not be before start_date"}}
	}
	return nil
}
