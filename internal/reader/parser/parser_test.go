package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/literal"
	"github.com/ensemble-lang/ensemble/internal/reader/lexer"
	"github.com/ensemble-lang/ensemble/internal/type/hash"
	"github.com/ensemble-lang/ensemble/internal/type/num"
	"github.com/ensemble-lang/ensemble/internal/type/str"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

func parse(s string, opts ...Option) (cell.T, error) {
	l := lexer.New("test")

	l.Scan(s)

	return New(l.Token, opts...).Parse()
}

func check(t *testing.T, s, expected string, opts ...Option) {
	t.Helper()

	c, err := parse(s, opts...)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", s, err)
	}

	if actual := literal.String(c); actual != expected {
		t.Fatalf("%q: expected %s, got %s", s, expected, actual)
	}

	// What is printed should read back as the same value.
	r, err := parse(literal.String(c), opts...)
	if err != nil {
		t.Fatalf("%q: reparse failed: %v", s, err)
	}

	if !r.Equal(c) {
		t.Fatalf("%q: parsed (%s) and reparsed (%s) do not match",
			s, literal.String(c), literal.String(r))
	}
}

func TestAtoms(t *testing.T) {
	for _, tc := range []struct {
		text     string
		expected string
	}{
		{"null", "null"},
		{"true", "true"},
		{"false", "false"},
		{"42", "42"},
		{"-7", "-7"},
		{"1.25", "1.25"},
		{`"a\nb"`, `"a\nb"`},
		{`"say \"hi\""`, `"say \"hi\""`},
		{"foo", "foo"},
		{"1.2.3", "1.2.3"},
	} {
		check(t, tc.text, tc.expected)
	}
}

func TestKeyword(t *testing.T) {
	c, err := parse("name:")
	if err != nil {
		t.Fatal(err)
	}

	if s, ok := c.(*str.T); !ok || s.String() != "name:" {
		t.Fatalf("expected the string name:, got %v", c)
	}
}

func TestKeywordKey(t *testing.T) {
	for _, text := range []string{`{foo: 1}`, `{"foo" 1}`} {
		c, err := parse(text)
		if err != nil {
			t.Fatal(err)
		}

		h, ok := c.(*hash.T)
		if !ok {
			t.Fatalf("%s: expected an object, got %v", text, c)
		}

		if _, ok := h.Get("foo"); !ok {
			t.Errorf("%s: expected the key foo, got %v", text, h.Keys())
		}

		if _, ok := h.Get("foo:"); ok {
			t.Errorf("%s: the key kept its colon", text)
		}
	}
}

func TestNested(t *testing.T) {
	check(t, "[global, x, [add, 1, [multiply, 2, 3]]]",
		"[global, x, [add, 1, [multiply, 2, 3]]]")
	check(t, "[]", "[]")
	check(t, "[do [log 1]; [log 2]]", "[do, [log, 1], [log, 2]]")
}

func TestObject(t *testing.T) {
	check(t, `{a: 1, "b" 2, c: [3, {d: 4}]}`, "{a: 1, b: 2, c: [3, {d: 4}]}")
	check(t, "{}", "{}")

	c, err := parse(`{b: 1, a: 2, 3 4}`)
	if err != nil {
		t.Fatal(err)
	}

	h := hash.To(c)
	if keys := strings.Join(h.Keys(), " "); keys != "b a 3" {
		t.Fatalf("expected keys in source order, got %s", keys)
	}
}

func TestSymbolsAreInterned(t *testing.T) {
	table := sym.NewTable()

	c, err := parse("[x, x]", WithSymbols(table))
	if err != nil {
		t.Fatal(err)
	}

	s := literal.String(c)
	if s != "[x, x]" {
		t.Fatalf("expected [x, x], got %s", s)
	}

	x, ok := table.Lookup("x")
	if !ok {
		t.Fatal("x was not interned")
	}

	c, _ = parse("x", WithSymbols(table))
	if c != x {
		t.Fatal("reading x twice produced different symbols")
	}
}

func TestGlobal(t *testing.T) {
	pi := num.New("3.14")
	global := WithGlobal(func(path string) (cell.T, bool) {
		if path == "Math.PI" {
			return pi, true
		}

		return nil, false
	})

	c, err := parse("[Math.PI, Math.E]", global)
	if err != nil {
		t.Fatal(err)
	}

	if s := literal.String(c); s != "[3.14, Math.E]" {
		t.Fatalf("expected [3.14, Math.E], got %s", s)
	}
}

func TestSyntaxErrors(t *testing.T) {
	for _, tc := range []struct {
		text    string
		message string
	}{
		{"", "EOF"},
		{"   // nothing here", "EOF"},
		{"[1, 2", "expected ']', got EOF"},
		{"{a: 1", "expected '}', got EOF"},
		{"]", "unexpected ']'"},
		{"}", "unexpected '}'"},
		{`"abc`, `expected '"', got EOF`},
		{"{a: 1, b}", "odd number of forms in object literal; 'b' has no value"},
		{"{[1] 2}", "array cannot be used as an object key"},
	} {
		_, err := parse(tc.text)
		if err == nil {
			t.Errorf("%q: expected an error", tc.text)

			continue
		}

		if !errors.Is(err, failure.ErrSyntax) {
			t.Errorf("%q: expected a syntax failure, got %v", tc.text, err)
		}

		if err.Error() != tc.message {
			t.Errorf("%q: expected %q, got %q", tc.text, tc.message, err.Error())
		}
	}
}

func TestMore(t *testing.T) {
	l := lexer.New("test")

	l.Scan("[a] b {c: d}")

	p := New(l.Token)

	n := 0
	for p.More() {
		if _, err := p.Parse(); err != nil {
			t.Fatal(err)
		}

		n++
	}

	if n != 3 {
		t.Fatalf("expected 3 forms, got %d", n)
	}
}
