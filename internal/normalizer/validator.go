package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"chronicle/internal/models"
)

// Validation errors.
var (
	ErrNilRecord   = errors.New("invalid record: nil")
	ErrMissingID   = errors.New("missing id")
	ErrMissingName = errors.New("missing name")
	ErrInvalidYear = errors.New("year must be 1 or later")
)

// Validator checks that a raw record has the fields the engines need.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks a raw record of the given kind and returns the first problem
// found. Only the kind's reference year is range checked; other year fields
// never pick a bucket and may hold any value.
func (v *Validator) Validate(kind models.Kind, r *models.RawRecord) error {
	if r == nil {
		return ErrNilRecord
	}

	if strings.TrimSpace(r.ID) == "" {
		return ErrMissingID
	}

	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w (id %q)", ErrMissingName, r.ID)
	}

	field := kind.DateField()
	if field == "" {
		return nil
	}

	if year, ok := r.Years()[field]; ok && year < 1 {
		return fmt.Errorf("%w: %s=%d (id %q)", ErrInvalidYear, field, year, r.ID)
	}

	return nil
}
