package domain

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)

// ValidationError reports the first request field that failed a presence or
// format check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Missing " + field}
}

func invalid(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Invalid " + field}
}
