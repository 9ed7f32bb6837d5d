package application

import (
	"fmt"
	"strings"
	"time"

	"diaro/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateDate checks that a value parses as a YYYY-MM-DD entry date and
// returns the parsed date.
func ValidateDate(fieldName, value string) (time.Time, error) {
	if err := ValidateRequired(fieldName, value); err != nil {
		return time.Time{}, err
	}

	date, err := domain.ParseEntryDate(value)
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   fieldName,
			Message: "must be in YYYY-MM-DD format",
		}
	}
	return date, nil
}

// ValidateRange checks that an integer lies within [min, max].
func ValidateRange(fieldName string, value, min, max int) error {
	if value < min || value > max {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("must be between %d and %d", min, max),
		}
	}
	return nil
}
