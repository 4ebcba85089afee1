// Released under an MIT license. See LICENSE.

// Package failure defines the errors raised while reading and evaluating ensemble code.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

// Failure kinds.
const (
	Syntax Kind = iota + 1
	Unbound
	FormShape
	ArityMismatch
	Native
	MacroExpansion
	Interrupted
)

// String returns the name used when a failure of kind k is reported.
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "SyntaxFailure"
	case Unbound:
		return "UnboundSymbolFailure"
	case FormShape:
		return "FormShapeFailure"
	case ArityMismatch:
		return "ArityMismatchFailure"
	case Native:
		return "NativeFailure"
	case MacroExpansion:
		return "MacroExpansionFailure"
	case Interrupted:
		return "Interrupted"
	}

	return fmt.Sprintf("Failure(%d)", int(k))
}

// Sentinels for use with errors.Is.
//
//nolint:gochecknoglobals
var (
	ErrSyntax         = &Error{Kind: Syntax}
	ErrUnbound        = &Error{Kind: Unbound}
	ErrFormShape      = &Error{Kind: FormShape}
	ErrArityMismatch  = &Error{Kind: ArityMismatch}
	ErrNative         = &Error{Kind: Native}
	ErrMacroExpansion = &Error{Kind: MacroExpansion}
	ErrInterrupted    = &Error{Kind: Interrupted}
)

// Prop is a named detail attached to a failure.
type Prop struct {
	Key   string
	Value string
}

// Error is a classified failure with an optional cause.
type Error struct {
	Kind  Kind
	Text  string
	Props []Prop
	Cause error
}

// New creates a failure of kind k.
func New(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Text: fmt.Sprintf(format, args...)}
}

// Wrap creates a failure of kind k caused by err. The text may be empty.
func Wrap(k Kind, err error, format string, args ...interface{}) *Error {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}

	return &Error{Kind: k, Text: text, Cause: err}
}

// Error returns the failure's message.
func (e *Error) Error() string {
	switch {
	case e.Cause == nil:
		return e.Text
	case e.Text == "":
		return e.Cause.Error()
	}

	return e.Text + ": " + e.Cause.Error()
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind && t.Text == "" && t.Cause == nil && t.Props == nil
}

// Unwrap returns the failure's cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// With attaches the detail k=v to the failure e.
func (e *Error) With(k, v string) *Error {
	e.Props = append(e.Props, Prop{Key: k, Value: v})

	return e
}

// KindOf returns the kind of the outermost failure in err's chain.
// Errors that did not originate in ensemble are native failures.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}

	return Native
}
