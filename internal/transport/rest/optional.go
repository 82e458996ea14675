package rest

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/heartmarshall/readlog-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// optional is a JSON field that tells an absent key from an explicit null.
type optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// ptr returns the value when the key carried one, nil otherwise.
func (o optional[T]) ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// cleared reports an explicit null.
func (o optional[T]) cleared() bool { return o.Set && o.Null }

// parseDate converts a YYYY-MM-DD field. It returns nil for an absent or
// null key.
func parseDate(field string, o optional[string]) (*time.Time, error) {
	p := o.ptr()
	if p == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *p)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

// appendFieldErrors adds the field errors carried by err, if any.
func appendFieldErrors(errs []domain.FieldError, err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return append(errs, ve.Errors...)
	}
	return errs
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
