package calculation

import (
	"fmt"
	"time"
)

// ValidationError rejects a malformed request before any calculation begins.
// No partial result is ever produced alongside one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a named request field.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ThresholdUnavailableError means no threshold record covers the calculation
// date. Fatal: computing with wrong-year constants would silently produce
// incorrect output, so the engine never guesses or defaults here.
type ThresholdUnavailableError struct {
	At time.Time
}

func (e *ThresholdUnavailableError) Error() string {
	return fmt.Sprintf("no threshold record covers %s", e.At.Format("2006-01-02"))
}
