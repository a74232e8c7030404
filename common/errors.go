package common

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindSystem Kind = iota
	KindNotFound
	KindInvalidArgument
	KindInvalidCredentials
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "system error"
	}
}

// Sentinels for errors.Is checks. Every *Error matches the sentinel of its Kind.
var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Msg: "Invalid credentials"}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Msg: "Unauthorized"}
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NotFoundError(err error, msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg, Err: err}
}

func InvalidArgumentError(err error, msg string) error {
	return &Error{Kind: KindInvalidArgument, Msg: msg, Err: err}
}

func InvalidCredentialsError(err error) error {
	return &Error{Kind: KindInvalidCredentials, Msg: ErrInvalidCredentials.Msg, Err: err}
}

func UnauthorizedError(err error, msg string) error {
	if msg == "" {
		msg = ErrUnauthorized.Msg
	}
	return &Error{Kind: KindUnauthorized, Msg: msg, Err: err}
}

func SystemError(err error) error {
	return &Error{Kind: KindSystem, Msg: "internal error", Err: err}
}

// KindOf reports the Kind of err, KindSystem for anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindSystem
}

// Message returns the caller-facing text of err without the wrapped cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Msg != "" {
			return e.Msg
		}
		return e.Kind.String()
	}
	return err.Error()
}
