package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/native"
	"github.com/ensemble-lang/ensemble/internal/type/null"
)

type session struct {
	*T
	out *bytes.Buffer
	t   *testing.T
}

func setup(t *testing.T) *session {
	out := &bytes.Buffer{}

	return &session{New(Output(out)), out, t}
}

// check evaluates each of lines in turn and compares the printed value of
// the last one to expected.
func (s *session) check(expected string, lines ...string) {
	s.t.Helper()

	actual := ""

	for _, l := range lines {
		v, err := s.Rep(l)
		if err != nil {
			s.t.Fatalf("%s: unexpected error: %v", l, err)
		}

		actual = v
	}

	if actual != expected {
		s.t.Fatalf("%s: expected %s, got %s", lines[len(lines)-1], expected, actual)
	}
}

func (s *session) fail(sentinel error, lines ...string) error {
	s.t.Helper()

	last := len(lines) - 1
	for _, l := range lines[:last] {
		if _, err := s.Rep(l); err != nil {
			s.t.Fatalf("%s: unexpected error: %v", l, err)
		}
	}

	v, err := s.Rep(lines[last])
	if err == nil {
		s.t.Fatalf("%s: expected an error, got %s", lines[last], v)
	}

	if !errors.Is(err, sentinel) {
		s.t.Fatalf("%s: expected %v, got %v (%s)", lines[last], sentinel.(*failure.Error).Kind, failure.KindOf(err), err)
	}

	return err
}

func TestSelfEvaluating(t *testing.T) {
	s := setup(t)

	s.check("42", "42")
	s.check(`"text"`, `"text"`)
	s.check("null", "null")
	s.check("[]", "[]")
	s.check("[1, 2, 3]", "[1, 2, [add, 1, 2]]")
	s.check("{a: 2, b: [1]}", "{a: [add, 1, 1], b: [1]}")
	s.check(`"name:"`, "name:")
	s.check("#<function>", "[function, [x], x]")
}

func TestEndToEnd(t *testing.T) {
	s := setup(t)

	s.check("21",
		"[global, sumdown, [function, [n], [if, [greaterThan, n, 0], [add, n, [sumdown, [subtract, n, 1]]], 0]]]",
		"[sumdown, 6]",
	)

	s.check("12", "[const, [p, [add, 2, 3], q, [add, 2, p]], [add, p, q]]")

	s.check("3", "[do, [log, 101], [add, 1, 2]]")

	if out := s.out.String(); out != "101\n" {
		t.Fatalf("expected 101 to be logged once, got %q", out)
	}
}

func TestTailCalls(t *testing.T) {
	s := setup(t)

	s.check("20000",
		"[global, count, [function, [n, acc], [if, [equals, n, 0], acc, [count, [decrement, n], [increment, acc]]]]]",
		"[count, 20000, 0]",
	)

	// Tail position through do and let as well as if.
	s.check("done",
		"[global, spin, [function, [n], [do, [add, 1, 1], [let, [m, [decrement, n]], [if, [lessThan, m, 0], [quote, done], [spin, m]]]]]]",
		"[spin, 15000]",
	)
}

func TestShadowing(t *testing.T) {
	s := setup(t)

	s.check("4", "[global, x, 4]")
	s.check("9", "[const, [x, 9], x]")
	s.check("4", "x")
	s.check("10", "[[function, [x], [add, x, 1]], 9]")
	s.check("4", "x")
}

func TestLetSequential(t *testing.T) {
	s := setup(t)

	s.check("[1, 2]", "[let, [a, 1, b, [increment, a]], [array, a, b]]")
}

func TestArity(t *testing.T) {
	s := setup(t)

	s.fail(failure.ErrArityMismatch, "[[function, [a, b], a], 1]")
	s.check("[]", `[[function, [a, "&", more], more], 1]`)
	s.check("[2, 3]", "[[function, [a, &, more], more], 1, 2, 3]")
	s.check("[]", "[[function, [&, all], all]]")
	s.check("[]", "[[function, [a, &, more], more]]")
	s.check("null", "[[function, [a, &, more], a]]")
}

func TestQuasiquote(t *testing.T) {
	s := setup(t)

	s.check("a", "[quasiquoteexpand, [unquote, a]]")
	s.check("5", "[let, [a, 5], [quasiquote, [unquote, a]]]")
	s.check("[cons, [quote, a], [cons, [quote, b], []]]", "[quasiquoteexpand, [a, b]]")
	s.check("[0, 1, 2, 3]", "[let, [xs, [quote, [1, 2]]], [quasiquote, [0, [splice-unquote, xs], 3]]]")
	s.check("[x, 2, {k: 1}]", "[let, [n, 2], [quasiquote, [x, [unquote, n], {k: 1}]]]")
	s.check("7", "[quasiquote, 7]")
}

func TestQuote(t *testing.T) {
	s := setup(t)

	s.check("[add, 1, 2]", "[quote, [add, 1, 2]]")
	s.check("undefined", "[quote, undefined]")
	s.check("3", "[eval, [quote, [add, 1, 2]]]")
}

func TestMacros(t *testing.T) {
	s := setup(t)

	s.check("#<macro>",
		"[defmacro!, unless, [function, [c, a, b], [quasiquote, [if, [unquote, c], [unquote, b], [unquote, a]]]]]",
	)
	s.check("7", "[unless, false, 7, 8]")
	s.check("8", "[unless, true, 7, 8]")
	s.check("[if, true, 2, 1]", "[macroexpand, [unless, true, 1, 2]]")
	s.check("true", "[isMacro, unless]")

	// Expansion continues until the head is no longer a macro.
	s.check("[if, true, 2, 1]",
		"[defmacro!, unless2, [function, [c, a, b], [quasiquote, [unless, [unquote, c], [unquote, a], [unquote, b]]]]]",
		"[macroexpand, [unless2, true, 1, 2]]",
	)

	s.check("[add, 1, 2]", "[macroexpand, [add, 1, 2]]")
}

func TestDefmacroCopies(t *testing.T) {
	s := setup(t)

	s.check("false",
		"[global, f, [function, [x], x]]",
		"[defmacro!, m, f]",
		"[isMacro, f]",
	)
	s.check("true", "[isMacro, m]")
	s.check("5", "[f, 5]")

	s.fail(failure.ErrFormShape, "[defmacro!, n, 1]")
}

func TestMacroFailures(t *testing.T) {
	s := setup(t)

	err := s.fail(failure.ErrMacroExpansion,
		`[defmacro!, bad, [function, [], [throw, "nope"]]]`,
		"[bad]",
	)

	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected the cause in %q", err.Error())
	}

	if !errors.Is(err, failure.ErrNative) {
		t.Fatal("expected the native failure to be the cause")
	}
}

func TestTruthiness(t *testing.T) {
	s := setup(t)

	for _, tc := range []struct {
		text     string
		expected string
	}{
		{"[if, [], 7, 8]", "7"},
		{`[if, "", 7, 8]`, "7"},
		{"[if, {}, 7, 8]", "7"},
		{"[if, 0, 7, 8]", "8"},
		{"[if, null, 7, 8]", "8"},
		{"[if, false, 7, 8]", "8"},
		{"[if, 0.5, 7, 8]", "7"},
		{"[if, false, 7]", "null"},
	} {
		s.check(tc.expected, tc.text)
	}
}

func TestDo(t *testing.T) {
	s := setup(t)

	s.check("null", "[do]")

	// The last form is evaluated once, not re-evaluated as code.
	s.check("[add, 1, 2]", "[do, [quote, [add, 1, 2]]]")
}

func TestTryCatch(t *testing.T) {
	s := setup(t)

	s.check(`"boom"`, `[try, [throw, "boom"], [catch, e, [message, e]]]`)
	s.check(`"'undefinedName' not found in env."`,
		`[try, undefinedName, [catch, e, [getIn, e, "message"]]]`)
	s.check("3", "[try, [add, 1, 2]]")
	s.check("3", "[try, [add, 1, 2], [catch, e, 0]]")
	s.check(`"division by zero"`, "[try, [divide, 1, 0], [catch, err, [message, err]]]")

	s.fail(failure.ErrNative, `[try, [throw, "x"]]`)
	s.fail(failure.ErrFormShape, "[try, 1, [rescue, e, 2]]")
	s.fail(failure.ErrFormShape, "[try, 1, [catch, 3, 2]]")

	// The handler's own failure propagates.
	s.fail(failure.ErrUnbound, `[try, [throw, "x"], [catch, e, missing]]`)
}

func TestFormShape(t *testing.T) {
	s := setup(t)

	for _, text := range []string{
		"[if, true]",
		"[quote]",
		"[quote, 1, 2]",
		"[let, [a], a]",
		"[let, a, a]",
		"[let, [1, 2], 3]",
		"[global, 1, 2]",
		"[function, x, x]",
		"[global, x]",
	} {
		s.fail(failure.ErrFormShape, text)
	}
}

func TestUnbound(t *testing.T) {
	s := setup(t)

	err := s.fail(failure.ErrUnbound, "nope")
	if err.Error() != "'nope' not found in env." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSyntax(t *testing.T) {
	s := setup(t)

	s.fail(failure.ErrSyntax, "[add, 1")
	s.fail(failure.ErrSyntax, "{a: 1, b}")
}

func TestHostGlobals(t *testing.T) {
	s := setup(t)

	s.check("2", "[Math.floor, 2.5]")
	s.check("-3", "[Math.floor, -2.5]")
	s.check(`"ABC"`, `[String.toUpperCase, "abc"]`)
	s.check("null", `[console.log, "hi", 1]`)

	if out := s.out.String(); out != "hi 1\n" {
		t.Fatalf("unexpected console output %q", out)
	}

	s.check(`"{\"a\":[1,true,null]}"`, "[JSON.stringify, {a: [1, true, null]}]")
}

func TestRun(t *testing.T) {
	e := New(Output(&bytes.Buffer{}))

	v, err := e.Run("test", "[global, a, 1]\n// comment\n[add, a, 1]")
	if err != nil {
		t.Fatal(err)
	}

	if v.(interface{ String() string }).String() != "2" {
		t.Fatalf("expected 2, got %v", v)
	}

	v, err = e.Run("empty", "")
	if err != nil || v != null.Null {
		t.Fatalf("expected null for no forms, got %v, %v", v, err)
	}
}

func TestDefine(t *testing.T) {
	s := setup(t)

	s.Define("answer", native.Func("answer", func([]cell.T) cell.T {
		return s.symbols.Intern("yes")
	}))

	s.check("yes", "[answer]")
}

func TestInterrupt(t *testing.T) {
	s := setup(t)

	s.Define("stop", native.Func("stop", func([]cell.T) cell.T {
		s.Interrupt()
		return null.Null
	}))

	s.fail(failure.ErrInterrupted, "[try, [do, [stop], 1], [catch, e, 2]]")

	// The next evaluation starts afresh.
	s.check("3", "[add, 1, 2]")
}

func TestTrace(t *testing.T) {
	trace := &bytes.Buffer{}
	e := New(Output(&bytes.Buffer{}), Trace(trace))

	if _, err := e.Rep("[add, 1, 2]"); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(trace.String(), "evaluate: [add, 1, 2]\n") {
		t.Fatalf("unexpected trace %q", trace.String())
	}
}
