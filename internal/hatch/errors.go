package hatch

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures. A Kind is itself an error so callers can
// write errors.Is(err, hatch.NoValidRoot).
type Kind string

const (
	InvalidMeasurement     Kind = "invalid_measurement"
	ImplausibleMeasurement Kind = "implausible_measurement"
	UnsolvableFormula      Kind = "unsolvable_formula"
	NoValidRoot            Kind = "no_valid_root"
	ImplausibleResult      Kind = "implausible_result"
	UnknownSpecies         Kind = "unknown_species"
)

func (k Kind) Error() string { return string(k) }

// Error is a tagged engine failure.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

// Is matches a bare Kind or another *Error of the same kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// BatchError reports which element of a batch failed.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("measurement %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
