package host

import (
	"bytes"
	"testing"

	"github.com/ensemble-lang/ensemble/internal/interface/callable"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/literal"
	"github.com/ensemble-lang/ensemble/internal/type/num"
	"github.com/ensemble-lang/ensemble/internal/type/str"
)

func call(t *testing.T, h *T, path string, args ...cell.T) (cell.T, error) {
	t.Helper()

	c, ok := h.Lookup(path)
	if !ok {
		t.Fatalf("%s did not resolve", path)
	}

	fn, ok := c.(callable.T)
	if !ok {
		t.Fatalf("%s is not callable", path)
	}

	return fn.Call(args)
}

func check(t *testing.T, h *T, expected, path string, args ...cell.T) {
	t.Helper()

	v, err := call(t, h, path, args...)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", path, err)
	}

	if s := literal.String(v); s != expected {
		t.Fatalf("%s: expected %s, got %s", path, expected, s)
	}
}

func TestLookup(t *testing.T) {
	h := New(&bytes.Buffer{})

	for path, found := range map[string]bool{
		"Math":           true,
		"Math.PI":        true,
		"Math.floor":     true,
		"console.log":    true,
		"JSON.stringify": true,
		"Math.nothing":   false,
		"Math.PI.x":      false,
		"Nothing":        false,
		"Math.":          false,
		"":               false,
	} {
		if _, ok := h.Lookup(path); ok != found {
			t.Errorf("Lookup(%q): expected %v", path, found)
		}
	}
}

func TestMath(t *testing.T) {
	h := New(&bytes.Buffer{})

	v, _ := h.Lookup("Math.PI")
	if f, _ := num.To(v).Rat().Float64(); f < 3.14159 || f > 3.1416 {
		t.Fatalf("unexpected value for PI: %v", f)
	}

	for _, tc := range []struct {
		path     string
		arg      string
		expected string
	}{
		{"Math.abs", "-2.5", "2.5"},
		{"Math.ceil", "2.1", "3"},
		{"Math.ceil", "-2.1", "-2"},
		{"Math.floor", "2.9", "2"},
		{"Math.floor", "-2.1", "-3"},
		{"Math.round", "2.5", "3"},
		{"Math.round", "-2.5", "-2"},
		{"Math.sign", "-7", "-1"},
		{"Math.sqrt", "16", "4"},
		{"Math.trunc", "-2.7", "-2"},
	} {
		check(t, h, tc.expected, tc.path, num.New(tc.arg))
	}

	check(t, h, "9", "Math.max", num.Int(3), num.Int(9), num.Int(-1))
	check(t, h, "-1", "Math.min", num.Int(3), num.Int(9), num.Int(-1))

	if _, err := call(t, h, "Math.sqrt", num.Int(-1)); err == nil {
		t.Fatal("expected the square root of -1 to fail")
	}
}

func TestConsole(t *testing.T) {
	out := &bytes.Buffer{}
	h := New(out)

	check(t, h, "null", "console.log", str.New("a"), num.Int(1))

	if out.String() != "a 1\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestJSON(t *testing.T) {
	h := New(&bytes.Buffer{})

	text := `{"b":[1,2.5,"x\"y"],"a":{"c":null,"d":true}}`

	v, err := call(t, h, "JSON.parse", str.New(text))
	if err != nil {
		t.Fatal(err)
	}

	if s := literal.String(v); s != `{b: [1, 2.5, "x\"y"], a: {c: null, d: true}}` {
		t.Fatalf("unexpected parse result %s", s)
	}

	// Keys keep their order through a round trip.
	check(t, h, literal.String(str.New(text)), "JSON.stringify", v)

	for _, bad := range []string{`{"a":`, `[1] 2`, `nope`} {
		if _, err := call(t, h, "JSON.parse", str.New(bad)); err == nil {
			t.Errorf("JSON.parse(%s): expected an error", bad)
		}
	}
}

func TestNumberAndString(t *testing.T) {
	h := New(&bytes.Buffer{})

	check(t, h, "1.5", "Number.parseFloat", str.New(" 1.5 "))
	check(t, h, "true", "Number.isInteger", num.Int(4))
	check(t, h, "false", "Number.isInteger", num.New("4.5"))
	check(t, h, `"ABC"`, "String.toUpperCase", str.New("abc"))
	check(t, h, `"abc"`, "String.toLowerCase", str.New("ABC"))
	check(t, h, `"x"`, "String.trim", str.New("  x "))
	check(t, h, "true", "String.includes", str.New("haystack"), str.New("st"))
	check(t, h, `["a", "b", ""]`, "String.split", str.New("a,b,"), str.New(","))

	if _, err := call(t, h, "Number.parseFloat", str.New("abc")); err == nil {
		t.Fatal("expected parseFloat of abc to fail")
	}
}
