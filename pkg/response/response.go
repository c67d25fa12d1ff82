package response

import (
	"errors"
)

// Error is a domain error that carries the HTTP status it should surface
// with. Services return these as sentinels (catalog.ErrProductNotFound,
// chatbot.ErrHistoryNotFound); pkg/handlerUtil maps anything else to a 500.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Is matches two Errors by status code and message, so sentinel comparisons
// with errors.Is survive wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

// NewError builds an *Error sentinel from a status code and message.
func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
