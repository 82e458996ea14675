package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

const progressConcurrency = 4

// Create sets a reading goal for a year.
// Returns domain.ErrAlreadyExists if the user already has a goal for that year.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateGoalInput) (*domain.GoalProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	targetBooks := domain.DefaultTargetBooks
	if input.TargetBooks != nil {
		targetBooks = *input.TargetBooks
	}
	targetPages := domain.DefaultTargetPages
	if input.TargetPages != nil {
		targetPages = *input.TargetPages
	}

	g, err := s.goals.Create(ctx, &domain.ReadingGoal{
		ID:          uuid.New(),
		UserID:      userID,
		Year:        input.Year,
		TargetBooks: targetBooks,
		TargetPages: targetPages,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	s.log.InfoContext(ctx, "reading goal created",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", g.ID.String()),
		slog.Int("year", g.Year),
	)

	return s.withProgress(ctx, g)
}

// Get returns one of the user's goals with its progress.
func (s *Service) Get(ctx context.Context, userID, goalID uuid.UUID) (*domain.GoalProgress, error) {
	g, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	return s.withProgress(ctx, g)
}

// CurrentYear returns the goal for the current UTC calendar year.
// Returns domain.ErrNotFound when none is set.
func (s *Service) CurrentYear(ctx context.Context, userID uuid.UUID) (*domain.GoalProgress, error) {
	g, err := s.goals.GetByYear(ctx, userID, s.now().UTC().Year())
	if err != nil {
		return nil, err
	}
	return s.withProgress(ctx, g)
}

// List returns all of the user's goals with progress, latest year first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*domain.GoalProgress, error) {
	goals, err := s.goals.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	out := make([]*domain.GoalProgress, len(goals))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(progressConcurrency)
	for i, g := range goals {
		eg.Go(func() error {
			gp, err := s.withProgress(egCtx, g)
			if err != nil {
				return err
			}
			out[i] = gp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Update applies a partial update to one of the user's goals.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, input UpdateGoalInput) (*domain.GoalProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.goals.Update(ctx, userID, input.GoalID, domain.GoalUpdateParams{
		Year:        input.Year,
		TargetBooks: input.TargetBooks,
		TargetPages: input.TargetPages,
	})
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	s.log.InfoContext(ctx, "reading goal updated",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", g.ID.String()),
	)

	return s.withProgress(ctx, g)
}

// Delete removes one of the user's goals.
func (s *Service) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	if err := s.goals.Delete(ctx, userID, goalID); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	s.log.InfoContext(ctx, "reading goal deleted",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", goalID.String()),
	)
	return nil
}

func (s *Service) withProgress(ctx context.Context, g *domain.ReadingGoal) (*domain.GoalProgress, error) {
	summary, err := s.progress.CompletedSummary(ctx, g.UserID, g.Year)
	if err != nil {
		return nil, fmt.Errorf("goal progress: %w", err)
	}
	return &domain.GoalProgress{
		ReadingGoal:    *g,
		BooksCompleted: summary.Books,
		PagesRead:      summary.Pages,
	}, nil
}
