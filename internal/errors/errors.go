package errors

import (
	"errors"
)

type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
	KindInternal
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func Invalid(msg string) error {
	return &Error{kind: KindInvalidInput, msg: msg}
}

func NotFound(msg string) error {
	return &Error{kind: KindNotFound, msg: msg}
}

func Conflict(msg string) error {
	return &Error{kind: KindConflict, msg: msg}
}

func Unauthorized(msg string) error {
	return &Error{kind: KindUnauthorized, msg: msg}
}

// KindOf reports the kind of err. Errors that do not carry a kind are
// treated as internal so they surface as opaque server errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

var (
	ErrUserNotFound       = NotFound("user not found")
	ErrEmailAlreadyInUse  = Conflict("email already in use")
	ErrInvalidCredentials = Unauthorized("invalid credentials")
	ErrTodoNotFound       = NotFound("todo not found")
)
