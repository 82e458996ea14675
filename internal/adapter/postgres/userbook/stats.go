package userbook

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/readlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readlog-backend/internal/domain"
)

// completedInYear restricts user_books (alias ub) to the user's entries
// completed within calendar year $2.
const completedInYear = `
ub.user_id = $1
AND ub.status = 'completed'
AND ub.finish_date >= make_date($2::int, 1, 1)
AND ub.finish_date <  make_date($2::int + 1, 1, 1)`

const completedSummarySQL = `
SELECT count(*), COALESCE(sum(b.pages), 0), avg(ub.rating)::float8
FROM user_books ub
JOIN books b ON b.id = ub.book_id
WHERE ` + completedInYear

// Books without a genre never form a bucket, so they neither appear in the
// distribution nor take one of the LIMIT slots.
const genreCountsSQL = `
SELECT b.genre, count(*)
FROM user_books ub
JOIN books b ON b.id = ub.book_id
WHERE ` + completedInYear + `
AND b.genre <> ''
GROUP BY b.genre
ORDER BY count(*) DESC, b.genre
LIMIT $3`

const monthlyCompletedSQL = `
SELECT EXTRACT(MONTH FROM ub.finish_date)::int, count(*)
FROM user_books ub
WHERE ` + completedInYear + `
GROUP BY 1`

const countByStatusSQL = `
SELECT status, count(*)
FROM user_books
WHERE user_id = $1
GROUP BY status`

// Genre-less books are dropped before LIMIT; each slot names a searchable genre.
const favoriteGenresSQL = `
SELECT b.genre, count(*)
FROM user_books ub
JOIN books b ON b.id = ub.book_id
WHERE ub.user_id = $1
AND ub.status = 'completed'
AND ub.rating >= $2
AND b.genre <> ''
GROUP BY b.genre
ORDER BY count(*) DESC, b.genre
LIMIT $3`

// CompletedSummary counts the user's books completed in year, sums their
// known page counts and averages their non-null ratings (nil when none).
func (r *Repo) CompletedSummary(ctx context.Context, userID uuid.UUID, year int) (domain.CompletedSummary, error) {
	var (
		books, pages int64
		avg          *float64
	)

	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, completedSummarySQL, userID, year).
		Scan(&books, &pages, &avg)
	if err != nil {
		return domain.CompletedSummary{}, fmt.Errorf("completed summary: %w", err)
	}

	return domain.CompletedSummary{Books: int(books), Pages: int(pages), AverageRating: avg}, nil
}

// GenreCounts returns the top genres among books completed in year,
// by count descending then genre ascending.
func (r *Repo) GenreCounts(ctx context.Context, userID uuid.UUID, year, limit int) ([]domain.GenreCount, error) {
	return r.queryGenres(ctx, "genre counts", genreCountsSQL, userID, year, limit)
}

// FavoriteGenres returns the genres the user completed most often with a
// rating of at least minRating, across all years.
func (r *Repo) FavoriteGenres(ctx context.Context, userID uuid.UUID, minRating, limit int) ([]domain.GenreCount, error) {
	return r.queryGenres(ctx, "favorite genres", favoriteGenresSQL, userID, minRating, limit)
}

func (r *Repo) queryGenres(ctx context.Context, op, sql string, args ...any) ([]domain.GenreCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]domain.GenreCount, 0)
	for rows.Next() {
		var (
			gc    domain.GenreCount
			count int64
		)
		if err := rows.Scan(&gc.Genre, &count); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		gc.Count = int(count)
		out = append(out, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// MonthlyCompleted returns the number of books completed per month of year,
// keyed 1..12. Months without completions are absent.
func (r *Repo) MonthlyCompleted(ctx context.Context, userID uuid.UUID, year int) (map[int]int, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, monthlyCompletedSQL, userID, year)
	if err != nil {
		return nil, fmt.Errorf("monthly completed: %w", err)
	}
	defer rows.Close()

	out := make(map[int]int, 12)
	for rows.Next() {
		var (
			month int32
			count int64
		)
		if err := rows.Scan(&month, &count); err != nil {
			return nil, fmt.Errorf("monthly completed: scan: %w", err)
		}
		out[int(month)] = int(count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("monthly completed: %w", err)
	}

	return out, nil
}

// CountByStatus counts all of the user's entries per status.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.ReadingStatus]int, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, countByStatusSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.ReadingStatus]int, 3)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("count by status: scan: %w", err)
		}
		out[domain.ReadingStatus(status)] = int(count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}

	return out, nil
}
