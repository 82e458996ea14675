// Package goal implements per-user yearly reading goals. Progress toward a
// goal is never stored; it is derived from the user's library on every read.
package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

type goalRepo interface {
	GetByID(ctx context.Context, userID, goalID uuid.UUID) (*domain.ReadingGoal, error)
	GetByYear(ctx context.Context, userID uuid.UUID, year int) (*domain.ReadingGoal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.ReadingGoal, error)
	Create(ctx context.Context, g *domain.ReadingGoal) (*domain.ReadingGoal, error)
	Update(ctx context.Context, userID, goalID uuid.UUID, params domain.GoalUpdateParams) (*domain.ReadingGoal, error)
	Delete(ctx context.Context, userID, goalID uuid.UUID) error
}

type progressRepo interface {
	CompletedSummary(ctx context.Context, userID uuid.UUID, year int) (domain.CompletedSummary, error)
}

// Service provides reading goal operations.
type Service struct {
	goals    goalRepo
	progress progressRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Goal service.
func NewService(log *slog.Logger, goals goalRepo, progress progressRepo) *Service {
	return &Service{
		goals:    goals,
		progress: progress,
		log:      log.With("service", "goal"),
		now:      time.Now,
	}
}
