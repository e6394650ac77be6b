package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can decide what to do with it:
// bad input is never retried, a vanished entity means refresh, no-work is
// benign, and transient store failures may be retried with backoff by the
// caller. The engine itself never retries.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindNoWork
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not-found"
	case KindNoWork:
		return "no-work"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NoWork(format string, args ...interface{}) error {
	return &Error{Kind: KindNoWork, Message: fmt.Sprintf(format, args...)}
}

// Transient wraps a store/network error that is safe for the caller to retry.
func Transient(err error, message string) error {
	return &Error{Kind: KindTransient, Message: message, Err: err}
}

func is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsValidation(err error) bool { return is(err, KindValidation) }
func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsNoWork(err error) bool     { return is(err, KindNoWork) }
func IsTransient(err error) bool  { return is(err, KindTransient) }
