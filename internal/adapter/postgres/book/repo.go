// Package book implements the Book registry repository using PostgreSQL.
package book

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/readlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readlog-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

const columns = `id, google_book_id, title, author, genre, pages, cover_url,
    description, published_date, average_rating, created_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new book repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a book by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBook(q.QueryRow(ctx, `SELECT `+columns+` FROM books WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return b, nil
}

// GetByGoogleID returns a book by its external catalog id.
func (r *Repo) GetByGoogleID(ctx context.Context, googleBookID string) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBook(q.QueryRow(ctx, `SELECT `+columns+` FROM books WHERE google_book_id = $1`, googleBookID))
	if err != nil {
		return nil, postgres.MapError(err, "book", googleBookID)
	}
	return b, nil
}

// List returns books matching the filter, newest first.
// Search matches title or author case-insensitively; Genre matches a
// substring of the flattened genre string.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	query := psql.Select(columns).From("books")

	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		pattern := "%" + escapeLike(strings.TrimSpace(*filter.Search)) + "%"
		query = query.Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"author": pattern}})
	}
	if filter.Genre != nil && strings.TrimSpace(*filter.Genre) != "" {
		query = query.Where(sq.ILike{"genre": "%" + escapeLike(strings.TrimSpace(*filter.Genre)) + "%"})
	}

	query = query.OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(max(filter.Offset, 0)))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list books query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a book. Returns domain.ErrAlreadyExists when the external
// catalog id is already registered.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO books (id, google_book_id, title, author, genre, pages, cover_url,
    description, published_date, average_rating, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING `+columns,
		b.ID, b.GoogleBookID, b.Title, b.Author, b.Genre, b.Pages, b.CoverURL,
		b.Description, b.PublishedDate, b.AverageRating, b.CreatedAt,
	)

	created, err := scanBook(row)
	if err != nil {
		return nil, postgres.MapError(err, "book", b.GoogleBookID)
	}
	return created, nil
}

// Update applies a partial update. An empty params set returns the current row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.BookUpdateParams) (*domain.Book, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query := psql.Update("books").Where(sq.Eq{"id": id}).Suffix("RETURNING " + columns)

	if params.GoogleBookID != nil {
		query = query.Set("google_book_id", *params.GoogleBookID)
	}
	if params.Title != nil {
		query = query.Set("title", *params.Title)
	}
	if params.Author != nil {
		query = query.Set("author", *params.Author)
	}
	if params.Genre != nil {
		query = query.Set("genre", *params.Genre)
	}
	switch {
	case params.ClearPages:
		query = query.Set("pages", nil)
	case params.Pages != nil:
		query = query.Set("pages", *params.Pages)
	}
	if params.CoverURL != nil {
		query = query.Set("cover_url", *params.CoverURL)
	}
	if params.Description != nil {
		query = query.Set("description", *params.Description)
	}
	if params.PublishedDate != nil {
		query = query.Set("published_date", *params.PublishedDate)
	}
	switch {
	case params.ClearAverageRating:
		query = query.Set("average_rating", nil)
	case params.AverageRating != nil:
		query = query.Set("average_rating", *params.AverageRating)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update book query: %w", err)
	}

	b, err := scanBook(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return b, nil
}

// Delete removes a book and, through the foreign key cascade, every
// library entry referencing it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "book", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanBook(row pgx.Row) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(
		&b.ID, &b.GoogleBookID, &b.Title, &b.Author, &b.Genre, &b.Pages, &b.CoverURL,
		&b.Description, &b.PublishedDate, &b.AverageRating, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
