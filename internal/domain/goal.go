package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default reading goal targets.
const (
	DefaultTargetBooks = 12
	DefaultTargetPages = 3000
)

// ReadingGoal is a per-user, per-year reading target.
type ReadingGoal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Year        int
	TargetBooks int
	TargetPages int
	CreatedAt   time.Time
}

// GoalUpdateParams holds the fields of a partial goal update.
type GoalUpdateParams struct {
	Year        *int
	TargetBooks *int
	TargetPages *int
}

// IsEmpty reports whether no field is set.
func (p GoalUpdateParams) IsEmpty() bool {
	return p.Year == nil && p.TargetBooks == nil && p.TargetPages == nil
}

// GoalProgress is a goal together with progress derived from the library.
type GoalProgress struct {
	ReadingGoal
	BooksCompleted int
	PagesRead      int
}
