package user

import "errors"

// Sentinel errors for the user service layer.
var (
	ErrNotFound      = errors.New("user not found")
	ErrNicknameTaken = errors.New("nickname already exists")
)

// ValidationError is returned when a profile field fails validation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
