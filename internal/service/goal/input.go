package goal

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

const (
	minYear = 1
	maxYear = 9999
)

// CreateGoalInput holds the parameters for creating a goal. nil targets
// take the defaults.
type CreateGoalInput struct {
	Year        int
	TargetBooks *int
	TargetPages *int
}

// Validate checks all fields and collects all errors.
func (i CreateGoalInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateYear(&i.Year)...)
	errs = append(errs, validateTarget("target_books", i.TargetBooks)...)
	errs = append(errs, validateTarget("target_pages", i.TargetPages)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateGoalInput holds the parameters for a partial goal update.
type UpdateGoalInput struct {
	GoalID      uuid.UUID
	Year        *int
	TargetBooks *int
	TargetPages *int
}

// Validate checks all fields and collects all errors.
func (i UpdateGoalInput) Validate() error {
	var errs []domain.FieldError

	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateYear(i.Year)...)
	errs = append(errs, validateTarget("target_books", i.TargetBooks)...)
	errs = append(errs, validateTarget("target_pages", i.TargetPages)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateYear(year *int) []domain.FieldError {
	if year != nil && (*year < minYear || *year > maxYear) {
		return []domain.FieldError{{Field: "year", Message: "must be between 1 and 9999"}}
	}
	return nil
}

func validateTarget(field string, v *int) []domain.FieldError {
	if v != nil && *v < 1 {
		return []domain.FieldError{{Field: field, Message: "must be >= 1"}}
	}
	return nil
}
