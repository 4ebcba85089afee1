// Released under an MIT license. See LICENSE.

// Package printer serializes ensemble values and failures as text.
package printer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/literal"
)

// String renders c. Strings are quoted and escaped when escaped is true.
func String(c cell.T, escaped bool) (s string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		s = ""
		err = fmt.Errorf("unmatched value: %v", r)
	}()

	if escaped {
		return literal.String(c), nil
	}

	return common.String(c), nil
}

// FormatError renders err as a multi-line diagnostic: its name, message,
// the chain of causes, and any properties attached along the way.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Error Name: %s\n", kind(err))
	fmt.Fprintf(&b, "Error Message: %s\n", err.Error())
	b.WriteString("Error Stack:\n")

	props := []failure.Prop{}

	for e := err; e != nil; e = errors.Unwrap(e) {
		text := e.Error()

		var f *failure.Error
		if errors.As(e, &f) && f == e {
			props = append(props, f.Props...)

			if f.Text != "" {
				text = f.Text
			}
		}

		fmt.Fprintf(&b, "    at %s: %s\n", kind(e), text)
	}

	for _, p := range props {
		fmt.Fprintf(&b, "Error Prop %q: %s\n", p.Key, p.Value)
	}

	return b.String()
}

func kind(err error) string {
	var f *failure.Error
	if errors.As(err, &f) {
		return f.Kind.String()
	}

	return "Error"
}
