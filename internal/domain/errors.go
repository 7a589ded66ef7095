package domain

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation  Kind = "validation"
	KindConflict    Kind = "conflict"
	KindNotFound    Kind = "not_found"
	KindUnavailable Kind = "unavailable"
	KindStorage     Kind = "storage"
)

// Sentinels for errors.Is; every *Error matches the sentinel of its kind.
var (
	ErrValidation  = &Error{Kind: KindValidation, Msg: "invalid input"}
	ErrConflict    = &Error{Kind: KindConflict, Msg: "conflict"}
	ErrNotFound    = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrUnavailable = &Error{Kind: KindUnavailable, Msg: "unavailable"}
	ErrStorage     = &Error{Kind: KindStorage, Msg: "storage failure"}
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Unavailable(msg string, err error) error {
	return &Error{Kind: KindUnavailable, Msg: msg, Err: err}
}

// Storage wraps a persistence failure. Already-typed errors pass through.
func Storage(msg string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

// KindOf reports the kind of err; untyped errors count as storage failures.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}
