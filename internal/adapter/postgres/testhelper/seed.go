package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "reader-" + suffix + "@example.com",
		Username:     "reader-" + suffix,
		PasswordHash: "seed-password-hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// BookOption customizes a seeded book.
type BookOption func(*domain.Book)

// WithGenre sets the seeded book's genre.
func WithGenre(genre string) BookOption {
	return func(b *domain.Book) { b.Genre = genre }
}

// WithPages sets the seeded book's page count; nil leaves it unknown.
func WithPages(pages *int) BookOption {
	return func(b *domain.Book) { b.Pages = pages }
}

// SeedBook creates a book with a unique google_book_id and 100 pages unless overridden.
func SeedBook(t *testing.T, pool *pgxpool.Pool, opts ...BookOption) domain.Book {
	t.Helper()

	suffix := uniqueSuffix()
	pages := 100
	book := domain.Book{
		ID:            uuid.New(),
		GoogleBookID:  "gb-" + suffix,
		Title:         "Seeded Book " + suffix,
		Author:        "Seed Author",
		Genre:         "Fiction",
		Pages:         &pages,
		PublishedDate: "2020",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&book)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO books (id, google_book_id, title, author, genre, pages, cover_url, description, published_date, average_rating, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		book.ID, book.GoogleBookID, book.Title, book.Author, book.Genre, book.Pages,
		book.CoverURL, book.Description, book.PublishedDate, book.AverageRating, book.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return book
}

// EntryOption customizes a seeded library entry.
type EntryOption func(*domain.LibraryEntry)

// Completed marks the seeded entry completed on finish with an optional rating.
func Completed(finish time.Time, rating *int) EntryOption {
	return func(e *domain.LibraryEntry) {
		e.Status = domain.ReadingStatusCompleted
		e.FinishDate = &finish
		e.Rating = rating
		e.ProgressPercentage = 100
	}
}

// WithStatus sets the seeded entry's status.
func WithStatus(s domain.ReadingStatus) EntryOption {
	return func(e *domain.LibraryEntry) { e.Status = s }
}

// SeedEntry creates a want_to_read library entry linking user and book.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID, bookID uuid.UUID, opts ...EntryOption) domain.LibraryEntry {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.LibraryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		Status:    domain.ReadingStatusWantToRead,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&entry)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_books (id, user_id, book_id, status, rating, start_date, finish_date, notes, progress_percentage, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		entry.ID, entry.UserID, entry.BookID, string(entry.Status), entry.Rating, entry.StartDate,
		entry.FinishDate, entry.Notes, entry.ProgressPercentage, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return entry
}
