// Released under an MIT license. See LICENSE.

// Package commands provides the functions bound in every root frame.
package commands

import (
	"io"

	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/env"
	"github.com/ensemble-lang/ensemble/internal/type/native"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

type namespace struct {
	out     io.Writer
	symbols *sym.Table
}

// Namespace returns the core bindings, in registration order. Printing
// functions write to out and symbols are interned in symbols.
func Namespace(out io.Writer, symbols *sym.Table) []env.Binding {
	ns := &namespace{out: out, symbols: symbols}

	functions := []struct {
		name string
		fn   func([]cell.T) cell.T
	}{
		// Lists.
		{"cons", cons},
		{"concat", concat},
		{"array", array},
		{"isEmpty", isEmpty},
		{"length", length},
		{"at", at},
		{"first", first},
		{"rest", rest},

		// Objects.
		{"getIn", getIn},
		{"hasOwn", hasOwn},
		{"entries", entries},

		// Types.
		{"isArray", isArray},
		{"isNumber", isNumber},
		{"isString", isString},
		{"isSymbol", isSymbol},
		{"isFunction", isFunction},
		{"isObject", isObject},
		{"isNull", isNull},
		{"isBoolean", isBoolean},
		{"isMacro", isMacro},

		// Comparison.
		{"lessThan", lessThan},
		{"lessThanOrEqual", lessThanOrEqual},
		{"greaterThan", greaterThan},
		{"greaterThanOrEqual", greaterThanOrEqual},
		{"equals", equals},

		// Arithmetic.
		{"add", add},
		{"subtract", subtract},
		{"multiply", multiply},
		{"divide", divide},
		{"remainder", remainder},
		{"power", power},
		{"increment", increment},
		{"decrement", decrement},

		// Logic.
		{"and", and},
		{"or", or},
		{"not", not},

		// Strings and output.
		{"toString", toString},
		{"toEscaped", toEscaped},
		{"log", ns.log},
		{"logString", ns.log},
		{"logEscaped", ns.logEscaped},
		{"match", match},
		{"glob", glob},

		// Errors.
		{"throw", throw},
		{"message", message},

		// Symbols.
		{"symbol", ns.symbol},
		{"gensym", ns.gensym},

		// Time.
		{"now", now},
	}

	bindings := make([]env.Binding, 0, len(functions))
	for _, f := range functions {
		bindings = append(bindings, env.Binding{
			Symbol: symbols.Intern(f.name),
			Value:  native.Func(f.name, f.fn),
		})
	}

	return bindings
}
