// Package errors defines the engine error taxonomy. Structural errors (bad
// path, unsupported format, unknown column, inapplicable transform) abort
// the single operation that raised them; per-value conversion failures are
// never errors and are reported as counts on the operation result instead.
package errors

import "fmt"

// Kind classifies an engine error.
type Kind string

const (
	KindUnsupportedFormat     Kind = "unsupported_format"
	KindParseError            Kind = "parse_error"
	KindIOError               Kind = "io_error"
	KindUnknownColumn         Kind = "unknown_column"
	KindInapplicableTransform Kind = "inapplicable_transform"
	KindUnknownTransform      Kind = "unknown_transform"
)

// Error is a structured engine error.
type Error struct {
	Kind    Kind   `json:"kind"`
	Op      string `json:"op,omitempty"`
	Path    string `json:"path,omitempty"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "unknown engine error"
	}
	switch {
	case e.Column != "":
		return fmt.Sprintf("[%s] %s: column %q: %s", e.Kind, e.Op, e.Column, e.Message)
	case e.Path != "":
		return fmt.Sprintf("[%s] %s %s: %s", e.Kind, e.Op, e.Path, e.Message)
	case e.Op != "":
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Op, e.Message)
	default:
		return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewLoadError creates a load error of the given kind.
func NewLoadError(kind Kind, path, message string, cause error) *Error {
	return &Error{Kind: kind, Op: "load", Path: path, Message: message, Cause: cause}
}

// NewSaveError creates a save error of the given kind.
func NewSaveError(kind Kind, path, message string, cause error) *Error {
	return &Error{Kind: kind, Op: "save", Path: path, Message: message, Cause: cause}
}

// NewUnknownColumn reports a column selector that matches no table column.
func NewUnknownColumn(op, column string) *Error {
	return &Error{
		Kind:    KindUnknownColumn,
		Op:      op,
		Column:  column,
		Message: "no such column in the loaded table",
	}
}

// NewInapplicableTransform reports a transformation that cannot be applied
// to the selected column.
func NewInapplicableTransform(column, message string) *Error {
	return &Error{
		Kind:    KindInapplicableTransform,
		Op:      "apply",
		Column:  column,
		Message: message,
	}
}

// NewUnknownTransform reports a (family, type) pair outside the compiled
// catalog. The catalog is a closed set presented by the caller's UI, so
// this is a programming error, not user input.
func NewUnknownTransform(family, typ string) *Error {
	return &Error{
		Kind:    KindUnknownTransform,
		Op:      "apply",
		Message: fmt.Sprintf("no transformation registered for (%s, %s)", family, typ),
	}
}

// KindOf returns the Kind of an engine error, or "" for other errors.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an engine error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
