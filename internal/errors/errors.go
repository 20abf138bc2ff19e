// Package errors defines the failure kinds surfaced by chart construction.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a chart construction failure.
type Kind int

const (
	// Unknown is the zero Kind, reported for errors not produced by this package.
	Unknown Kind = iota
	// InvalidInput covers shape or length mismatches and values the plotting
	// library rejects.
	InvalidInput
	// MissingColumn is returned when a geographic attribute column is absent.
	MissingColumn
	// EmptyDataset is returned when there is nothing to bin, estimate or draw.
	EmptyDataset
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case MissingColumn:
		return "missing column"
	case EmptyDataset:
		return "empty dataset"
	default:
		return "unknown"
	}
}

// Sentinels for use with errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidInput  = &Error{Kind: InvalidInput}
	ErrMissingColumn = &Error{Kind: MissingColumn}
	ErrEmptyDataset  = &Error{Kind: EmptyDataset}
)

// Error is a classified failure with the original cause attached.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

// New constructs an Error. err may be nil.
func New(kind Kind, op, message string, err error) error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// Invalid is shorthand for an InvalidInput error.
func Invalid(op string, err error, format string, args ...any) error {
	return New(InvalidInput, op, fmt.Sprintf(format, args...), err)
}

// Empty is shorthand for an EmptyDataset error.
func Empty(op, message string) error {
	return New(EmptyDataset, op, message, nil)
}

// Missing is shorthand for a MissingColumn error naming the absent column.
func Missing(op, column string) error {
	return New(MissingColumn, op, fmt.Sprintf("column %q not found", column), nil)
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
