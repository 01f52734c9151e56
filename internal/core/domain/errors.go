package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// InputError carries a user-facing validation message. It matches
// ErrInvalidInput under errors.Is so callers can branch on the sentinel.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// Invalid returns an *InputError with the given message.
func Invalid(msg string) error {
	return &InputError{Msg: msg}
}
