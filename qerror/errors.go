// Package qerror defines the engine's runtime error kinds (spec §7) and
// the cooperative-abort sentinel. Every error the engine raises on purpose
// is one of these kinds; storage errors pass through unchanged
// (StorageError is a label for documentation, not a wrapper type — the
// engine never touches an error accessor.* methods return, it just
// propagates it).
//
// Go's standard errors/fmt.Errorf machinery is used throughout rather than
// a third-party error library: no repo in the reference corpus defines a
// reusable error-kind hierarchy (the teacher falls back to the same
// fmt.Errorf/plain-error-return idiom for its own data-dependent errors),
// so there is nothing to wire here beyond the standard library.
package qerror

import (
	"errors"
	"fmt"
)

// Kind is the closed set of runtime error kinds, in increasing severity
// per spec §7.
type Kind int

const (
	KindType Kind = iota
	KindQueryRuntime
	KindAbort
	KindIndexExists
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "TypeError"
	case KindQueryRuntime:
		return "QueryRuntimeError"
	case KindAbort:
		return "AbortError"
	case KindIndexExists:
		return "IndexExistsError"
	default:
		return "UnknownError"
	}
}

// Error is the engine's runtime error value. It carries a Kind so callers
// can branch with errors.As, and wraps an underlying cause when there is
// one (e.g. a value.ErrIncomparable surfaced as a TypeError).
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, qerror.Abort) against the sentinels below.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

func newf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// TypeErrorf builds a TypeError. The engine raises it for a non-boolean
// filter result, UNWIND or FOREACH over a non-list, non-numeric arithmetic
// or aggregation, and bad function or operator operands. Property values
// are not checked for storability, so no error is raised for them.
func TypeErrorf(format string, args ...interface{}) *Error {
	return newf(KindType, format, args...)
}

// Wrap builds an *Error of kind k that wraps an underlying cause, e.g. a
// value.ErrIncomparable bubbling up from OrderBy's comparator as a TypeError.
func Wrap(k Kind, cause error, format string, args ...interface{}) *Error {
	e := newf(k, format, args...)
	e.Err = cause
	return e
}

// QueryRuntimeErrorf builds a QueryRuntimeError. The engine raises it for
// deleting a non-entity, a negative or non-integer Skip/Limit, setting or
// removing a property or label on a non-entity, and a non-indexable
// ScanAllByLabelPropertyValue value. Deleting a vertex that still has
// edges and accessing a deleted record fail with the storage layer's own
// error, which is passed through unchanged rather than converted to this
// kind.
func QueryRuntimeErrorf(format string, args ...interface{}) *Error {
	return newf(KindQueryRuntime, format, args...)
}

// Abort is the sentinel AbortError raised when db.ShouldAbort() is true.
// It carries no message beyond its Kind; every abort looks the same to a
// caller deciding whether to roll back.
var Abort = &Error{Kind: KindAbort, Msg: "query aborted by cooperative cancellation"}

// IndexExists is an IndexExistsError sentinel of this package. BuildIndex
// reports an existing index as accessor.ErrIndexExists instead, and that is
// the error CreateIndex swallows; nothing in the engine returns IndexExists.
var IndexExists = &Error{Kind: KindIndexExists, Msg: "index already exists"}
