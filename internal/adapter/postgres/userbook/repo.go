// Package userbook implements the user library repository using PostgreSQL.
// Every query is filtered by user_id: rows owned by another user are
// reported as domain.ErrNotFound, never as a permission error.
package userbook

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/readlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readlog-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

const entryColumns = `
    ub.id, ub.user_id, ub.book_id, ub.status, ub.rating, ub.start_date, ub.finish_date,
    ub.notes, ub.progress_percentage, ub.created_at, ub.updated_at,
    b.id, b.google_book_id, b.title, b.author, b.genre, b.pages, b.cover_url,
    b.description, b.published_date, b.average_rating, b.created_at`

const entryFrom = `user_books ub JOIN books b ON b.id = ub.book_id`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides library entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user library repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry with its book. Returns domain.ErrNotFound if the
// entry does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.LibraryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM `+entryFrom+` WHERE ub.id = $1 AND ub.user_id = $2`,
		entryID, userID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user_book", entryID)
	}
	return e, nil
}

// List returns the user's entries, newest first, optionally filtered by status.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.LibraryFilter) ([]*domain.LibraryEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	query := psql.Select(entryColumns).From(entryFrom).Where(sq.Eq{"ub.user_id": userID})
	if filter.Status != nil {
		query = query.Where(sq.Eq{"ub.status": string(*filter.Status)})
	}
	query = query.OrderBy("ub.created_at DESC", "ub.id").
		Limit(uint64(limit)).
		Offset(uint64(max(filter.Offset, 0)))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.LibraryEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry and returns it with its book loaded.
// Returns domain.ErrAlreadyExists for a duplicate (user, book) pair and
// domain.ErrNotFound when the book does not exist.
func (r *Repo) Create(ctx context.Context, e *domain.LibraryEntry) (*domain.LibraryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
INSERT INTO user_books (id, user_id, book_id, status, rating, start_date, finish_date,
    notes, progress_percentage, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.UserID, e.BookID, string(e.Status), e.Rating, toPgDate(e.StartDate), toPgDate(e.FinishDate),
		e.Notes, e.ProgressPercentage, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_book", e.BookID)
	}

	return r.GetByID(ctx, e.UserID, e.ID)
}

// Update applies a partial update and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, userID, entryID uuid.UUID, params domain.LibraryEntryUpdateParams) (*domain.LibraryEntry, error) {
	query := psql.Update("user_books").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		Suffix("RETURNING id")

	if params.Status != nil {
		query = query.Set("status", string(*params.Status))
	}
	switch {
	case params.ClearRating:
		query = query.Set("rating", nil)
	case params.Rating != nil:
		query = query.Set("rating", *params.Rating)
	}
	switch {
	case params.ClearStartDate:
		query = query.Set("start_date", nil)
	case params.StartDate != nil:
		query = query.Set("start_date", toPgDate(params.StartDate))
	}
	switch {
	case params.ClearFinishDate:
		query = query.Set("finish_date", nil)
	case params.FinishDate != nil:
		query = query.Set("finish_date", toPgDate(params.FinishDate))
	}
	if params.Notes != nil {
		query = query.Set("notes", *params.Notes)
	}
	if params.ProgressPercentage != nil {
		query = query.Set("progress_percentage", *params.ProgressPercentage)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update entry query: %w", err)
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "user_book", entryID)
	}

	return r.GetByID(ctx, userID, id)
}

// Delete removes one of the user's entries.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM user_books WHERE id = $1 AND user_id = $2`, entryID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "user_book", entryID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user_book", entryID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.LibraryEntry, error) {
	var (
		e          domain.LibraryEntry
		b          domain.Book
		status     string
		startDate  pgtype.Date
		finishDate pgtype.Date
	)

	err := row.Scan(
		&e.ID, &e.UserID, &e.BookID, &status, &e.Rating, &startDate, &finishDate,
		&e.Notes, &e.ProgressPercentage, &e.CreatedAt, &e.UpdatedAt,
		&b.ID, &b.GoogleBookID, &b.Title, &b.Author, &b.Genre, &b.Pages, &b.CoverURL,
		&b.Description, &b.PublishedDate, &b.AverageRating, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Status = domain.ReadingStatus(status)
	e.StartDate = fromPgDate(startDate)
	e.FinishDate = fromPgDate(finishDate)
	e.Book = &b

	return &e, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// toPgDate converts a *time.Time to pgtype.Date (nil -> NULL), dropping the clock.
func toPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// fromPgDate converts pgtype.Date to *time.Time (NULL -> nil).
func fromPgDate(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
