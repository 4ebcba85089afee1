package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestKinds(t *testing.T) {
	for _, tc := range []struct {
		err      error
		sentinel error
		kind     Kind
	}{
		{New(Syntax, "EOF"), ErrSyntax, Syntax},
		{New(Unbound, "x"), ErrUnbound, Unbound},
		{Wrap(MacroExpansion, New(Native, "boom"), "m"), ErrMacroExpansion, MacroExpansion},
		{fmt.Errorf("context: %w", New(Interrupted, "interrupted")), ErrInterrupted, Interrupted},
		{errors.New("plain"), ErrNative, Native},
	} {
		if k := KindOf(tc.err); k != tc.kind {
			t.Errorf("%v: expected %s, got %s", tc.err, tc.kind, k)
		}

		if tc.kind != Native && !errors.Is(tc.err, tc.sentinel) {
			t.Errorf("%v: expected errors.Is to match %s", tc.err, tc.kind)
		}
	}
}

func TestCause(t *testing.T) {
	inner := New(Native, "division by zero")
	outer := Wrap(MacroExpansion, inner, "expanding '%s'", "m")

	if outer.Error() != "expanding 'm': division by zero" {
		t.Fatalf("unexpected message %q", outer.Error())
	}

	if !errors.Is(outer, ErrNative) {
		t.Fatal("expected the cause to match")
	}

	if errors.Unwrap(outer) != inner {
		t.Fatal("expected Unwrap to return the cause")
	}

	if s := Wrap(Syntax, inner, "").Error(); s != "division by zero" {
		t.Fatalf("expected the cause's message, got %q", s)
	}
}

func TestWith(t *testing.T) {
	e := New(ArityMismatch, "arity").With("bindings", "[a]").With("expressions", "[]")

	if len(e.Props) != 2 || e.Props[0].Key != "bindings" || e.Props[1].Value != "[]" {
		t.Fatalf("unexpected props %v", e.Props)
	}

	if errors.Is(e, ErrSyntax) {
		t.Fatal("an arity mismatch is not a syntax failure")
	}
}
