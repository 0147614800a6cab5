package inquiry

import "errors"

// ErrNotFound is returned when an inquiry id has no matching row.
var ErrNotFound = errors.New("inquiry not found")

// ValidationError is returned when inquiry input is missing, blank, or over
// a length bound.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
