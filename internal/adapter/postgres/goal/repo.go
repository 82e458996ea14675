// Package goal implements the ReadingGoal repository using PostgreSQL.
package goal

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/readlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readlog-backend/internal/domain"
)

const columns = `id, user_id, year, target_books, target_pages, created_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides reading goal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reading goal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a goal by primary key with user_id filter.
func (r *Repo) GetByID(ctx context.Context, userID, goalID uuid.UUID) (*domain.ReadingGoal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGoal(q.QueryRow(ctx,
		`SELECT `+columns+` FROM reading_goals WHERE id = $1 AND user_id = $2`, goalID, userID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "reading_goal", goalID)
	}
	return g, nil
}

// GetByYear returns the user's goal for year.
func (r *Repo) GetByYear(ctx context.Context, userID uuid.UUID, year int) (*domain.ReadingGoal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGoal(q.QueryRow(ctx,
		`SELECT `+columns+` FROM reading_goals WHERE user_id = $1 AND year = $2`, userID, year,
	))
	if err != nil {
		return nil, postgres.MapError(err, "reading_goal", year)
	}
	return g, nil
}

// List returns all of the user's goals, latest year first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingGoal, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+columns+` FROM reading_goals WHERE user_id = $1 ORDER BY year DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reading goals: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.ReadingGoal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reading goals: %w", err)
	}

	return goals, nil
}

// Create inserts a goal. Returns domain.ErrAlreadyExists when the user
// already has a goal for that year.
func (r *Repo) Create(ctx context.Context, g *domain.ReadingGoal) (*domain.ReadingGoal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanGoal(q.QueryRow(ctx, `
INSERT INTO reading_goals (id, user_id, year, target_books, target_pages, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+columns,
		g.ID, g.UserID, g.Year, g.TargetBooks, g.TargetPages, g.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "reading_goal", g.Year)
	}
	return created, nil
}

// Update applies a partial update. Moving a goal onto a year that already
// has one returns domain.ErrAlreadyExists.
func (r *Repo) Update(ctx context.Context, userID, goalID uuid.UUID, params domain.GoalUpdateParams) (*domain.ReadingGoal, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, userID, goalID)
	}

	query := psql.Update("reading_goals").
		Where(sq.Eq{"id": goalID, "user_id": userID}).
		Suffix("RETURNING " + columns)

	if params.Year != nil {
		query = query.Set("year", *params.Year)
	}
	if params.TargetBooks != nil {
		query = query.Set("target_books", *params.TargetBooks)
	}
	if params.TargetPages != nil {
		query = query.Set("target_pages", *params.TargetPages)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update reading goal query: %w", err)
	}

	g, err := scanGoal(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "reading_goal", goalID)
	}
	return g, nil
}

// Delete removes one of the user's goals.
func (r *Repo) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM reading_goals WHERE id = $1 AND user_id = $2`, goalID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "reading_goal", goalID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "reading_goal", goalID)
	}
	return nil
}

func scanGoal(row pgx.Row) (*domain.ReadingGoal, error) {
	var g domain.ReadingGoal
	if err := row.Scan(&g.ID, &g.UserID, &g.Year, &g.TargetBooks, &g.TargetPages, &g.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
