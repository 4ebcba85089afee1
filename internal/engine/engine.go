// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed ensemble code.
package engine

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/engine/commands"
	"github.com/ensemble-lang/ensemble/internal/engine/host"
	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/printer"
	"github.com/ensemble-lang/ensemble/internal/reader"
	"github.com/ensemble-lang/ensemble/internal/reader/parser"
	"github.com/ensemble-lang/ensemble/internal/type/env"
	"github.com/ensemble-lang/ensemble/internal/type/hash"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/native"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

// T (engine) reads and evaluates ensemble code against a root frame.
type T struct {
	forms   map[*sym.T]form
	globals *host.T
	names   names
	out     io.Writer
	root    *env.T
	stop    atomic.Bool
	symbols *sym.Table
	trace   io.Writer
}

// Symbols the evaluator recognizes by identity.
type names struct {
	catch         *sym.T
	concat        *sym.T
	cons          *sym.T
	quote         *sym.T
	spliceUnquote *sym.T
	unquote       *sym.T
}

// Option configures an engine.
type Option func(*T)

// Output sets the writer used by log and the other printing builtins.
func Output(w io.Writer) Option {
	return func(e *T) {
		e.out = w
	}
}

// Symbols sets the table the engine interns symbols in.
func Symbols(t *sym.Table) Option {
	return func(e *T) {
		e.symbols = t
	}
}

// Trace sets a writer that receives a line for every evaluation step.
func Trace(w io.Writer) Option {
	return func(e *T) {
		e.trace = w
	}
}

// New creates a new engine with a root frame holding the core namespace.
func New(opts ...Option) *T {
	e := &T{
		out:     os.Stdout,
		symbols: sym.Default,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.forms = special(e.symbols)
	e.globals = host.New(e.out)
	e.names = names{
		catch:         e.symbols.Intern("catch"),
		concat:        e.symbols.Intern("concat"),
		cons:          e.symbols.Intern("cons"),
		quote:         e.symbols.Intern("quote"),
		spliceUnquote: e.symbols.Intern("splice-unquote"),
		unquote:       e.symbols.Intern("unquote"),
	}

	bindings := commands.Namespace(e.out, e.symbols)
	bindings = append(bindings, env.Binding{
		Symbol: e.symbols.Intern("eval"),
		Value:  native.New("eval", e.eval),
	})

	e.root = env.Root(bindings...)

	return e
}

// Define binds name to v in the root frame.
func (e *T) Define(name string, v cell.T) {
	e.root.Set(e.symbols.Intern(name), v)
}

// Interrupt asks the engine to abandon the current evaluation.
// It is safe to call from another goroutine or a signal handler.
func (e *T) Interrupt() {
	e.stop.Store(true)
}

// Read returns the first form in text.
func (e *T) Read(text string) (cell.T, error) {
	return e.reader("input").Read(text)
}

// Rep reads, evaluates, and prints the first form in text.
func (e *T) Rep(text string) (string, error) {
	e.stop.Store(false)

	ast, err := e.Read(text)
	if err != nil {
		return "", err
	}

	v, err := e.Eval(ast, e.root)
	if err != nil {
		return "", err
	}

	return printer.String(v, true)
}

// Root returns the engine's root frame.
func (e *T) Root() *env.T {
	return e.root
}

// Run evaluates every form in text, labelled for diagnostics, and
// returns the value of the last one.
func (e *T) Run(label, text string) (cell.T, error) {
	e.stop.Store(false)

	forms, err := e.reader(label).ReadAll(text)
	if err != nil {
		return nil, err
	}

	var v cell.T = null.Null

	for _, f := range forms {
		v, err = e.Eval(f, e.root)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Eval evaluates ast in scope. Calls in tail position, the branches of an
// if, and the last form of a do or let reuse the loop rather than
// recursing so deep tail recursion does not grow the Go stack.
func (e *T) Eval(ast cell.T, scope *env.T) (cell.T, error) {
	for {
		if e.stop.CompareAndSwap(true, false) {
			return nil, failure.New(failure.Interrupted, "interrupted")
		}

		e.tracef("evaluate", ast)

		if _, ok := list.Head(ast); !ok {
			return e.evalAst(ast, scope)
		}

		expanded, err := e.macroExpand(ast, scope)
		if err != nil {
			return nil, err
		}

		node, ok := expanded.(*list.T)
		if !ok || node.Len() == 0 {
			return e.evalAst(expanded, scope)
		}

		s, err := e.dispatch(node, scope)
		if err != nil {
			return nil, err
		}

		switch s := s.(type) {
		case Return:
			return s.Value, nil
		case Continue:
			ast, scope = s.Ast, s.Env
		}
	}
}

func (e *T) eval(args []cell.T) (cell.T, error) {
	args = validate.Fixed(args, 1, 1)

	return e.Eval(args[0], e.root)
}

func (e *T) evalAst(ast cell.T, scope *env.T) (cell.T, error) {
	each := func(c cell.T) (cell.T, error) {
		return e.Eval(c, scope)
	}

	switch n := ast.(type) {
	case *sym.T:
		return scope.Get(n)
	case *list.T:
		l, err := n.Map(each)
		if err != nil {
			return nil, err
		}

		return l, nil
	case *hash.T:
		h, err := n.Map(each)
		if err != nil {
			return nil, err
		}

		return h, nil
	}

	return ast, nil
}

func (e *T) reader(label string) *reader.T {
	return reader.New(label,
		parser.WithGlobal(e.globals.Lookup),
		parser.WithSymbols(e.symbols),
	)
}

func (e *T) tracef(label string, c cell.T) {
	if e.trace == nil {
		return
	}

	s, err := printer.String(c, true)
	if err != nil {
		s = "<" + c.Name() + ">"
	}

	fmt.Fprintf(e.trace, "%s: %s\n", label, s)
}
