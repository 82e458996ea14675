package library

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

// List returns the user's entries, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, input ListEntriesInput) ([]*domain.LibraryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, userID, domain.LibraryFilter{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Get returns one of the user's entries. Entries of other users are
// reported as domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, userID, entryID uuid.UUID) (*domain.LibraryEntry, error) {
	return s.entries.GetByID(ctx, userID, entryID)
}

// Create adds a book to the user's library.
// Returns domain.ErrAlreadyExists if the book is already in the library and
// domain.ErrNotFound if the book does not exist.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateEntryInput) (*domain.LibraryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ReadingStatusWantToRead
	}
	progress := domain.MinProgress
	if input.ProgressPercentage != nil {
		progress = *input.ProgressPercentage
	}

	now := s.now().UTC()
	entry, err := s.entries.Create(ctx, &domain.LibraryEntry{
		ID:                 uuid.New(),
		UserID:             userID,
		BookID:             input.BookID,
		Status:             status,
		Rating:             input.Rating,
		StartDate:          input.StartDate,
		FinishDate:         input.FinishDate,
		Notes:              input.Notes,
		ProgressPercentage: progress,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "library entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("book_id", entry.BookID.String()),
		slog.String("status", entry.Status.String()),
	)

	return entry, nil
}

// Update applies a partial update to one of the user's entries.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, input UpdateEntryInput) (*domain.LibraryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.touchesDates() {
		current, err := s.entries.GetByID(ctx, userID, input.EntryID)
		if err != nil {
			return nil, err
		}
		start := mergeDate(current.StartDate, input.StartDate, input.ClearStartDate)
		finish := mergeDate(current.FinishDate, input.FinishDate, input.ClearFinishDate)
		if errs := validateDateOrder(start, finish); len(errs) > 0 {
			return nil, domain.NewValidationErrors(errs)
		}
	}

	entry, err := s.entries.Update(ctx, userID, input.EntryID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "library entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("status", entry.Status.String()),
	)

	return entry, nil
}

// Delete removes one of the user's entries.
func (s *Service) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "library entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)
	return nil
}

// mergeDate returns the value a date field will hold after an update.
func mergeDate(current, next *time.Time, clear bool) *time.Time {
	switch {
	case next != nil:
		return next
	case clear:
		return nil
	default:
		return current
	}
}
