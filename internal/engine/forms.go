// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/ensemble-lang/ensemble/internal/failure"
	"github.com/ensemble-lang/ensemble/internal/interface/boolean"
	"github.com/ensemble-lang/ensemble/internal/interface/callable"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/interface/literal"
	"github.com/ensemble-lang/ensemble/internal/type/env"
	"github.com/ensemble-lang/ensemble/internal/type/errsys"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/sym"
)

type form int

const (
	apply form = iota
	defmacro
	do
	function
	global
	ifForm
	let
	macroexpand
	quasiquote
	quasiquoteexpand
	quote
	try
)

func special(t *sym.Table) map[*sym.T]form {
	return map[*sym.T]form{
		t.Intern("=>"):               function,
		t.Intern("const"):            let,
		t.Intern("defmacro!"):        defmacro,
		t.Intern("do"):               do,
		t.Intern("function"):         function,
		t.Intern("global"):           global,
		t.Intern("if"):               ifForm,
		t.Intern("let"):              let,
		t.Intern("macroexpand"):      macroexpand,
		t.Intern("quasiquote"):       quasiquote,
		t.Intern("quasiquoteexpand"): quasiquoteexpand,
		t.Intern("quote"):            quote,
		t.Intern("try"):              try,
	}
}

func (e *T) dispatch(node *list.T, scope *env.T) (signal, error) {
	k := apply
	if s, ok := node.At(0).(*sym.T); ok {
		if f, ok := e.forms[s]; ok {
			k = f
		}
	}

	switch k {
	case apply:
		return e.apply(node, scope)
	case defmacro:
		return e.defmacro(node, scope)
	case do:
		return e.do(node, scope)
	case function:
		return e.function(node, scope)
	case global:
		return e.global(node, scope)
	case ifForm:
		return e.ifForm(node, scope)
	case let:
		return e.let(node, scope)
	case macroexpand:
		return e.macroexpandForm(node, scope)
	case quasiquote:
		return e.quasiquoteForm(node, scope)
	case quasiquoteexpand:
		return e.quasiquoteexpand(node)
	case quote:
		return e.quote(node)
	case try:
		return e.try(node, scope)
	}

	panic("unknown form")
}

// [f, args...]
func (e *T) apply(node *list.T, scope *env.T) (signal, error) {
	c, err := e.evalAst(node, scope)
	if err != nil {
		return nil, err
	}

	evaluated := list.To(c)
	args := evaluated.Items()[1:]

	switch fn := evaluated.At(0).(type) {
	case *Closure:
		child, err := env.New(fn.scope, fn.params.Items(), args)
		if err != nil {
			return nil, err
		}

		return Continue{fn.body, child}, nil
	case callable.T:
		v, err := fn.Call(args)
		if err != nil {
			return nil, err
		}

		return Return{v}, nil
	}

	// A list whose head is not callable evaluates to itself, elementwise.
	return Return{evaluated}, nil
}

// [defmacro!, name, function]
func (e *T) defmacro(node *list.T, scope *env.T) (signal, error) {
	s, err := shape(node, 3, 3)
	if err != nil {
		return nil, err
	}

	name, err := symbol(node, s[1])
	if err != nil {
		return nil, err
	}

	v, err := e.Eval(s[2], scope)
	if err != nil {
		return nil, err
	}

	c, ok := v.(*Closure)
	if !ok {
		return nil, malformed(node, "'defmacro!' expects a function, got %s", v.Name())
	}

	m := c.copy()
	m.macro = true

	return Return{scope.Set(name, m)}, nil
}

// [do, forms...]
func (e *T) do(node *list.T, scope *env.T) (signal, error) {
	n := node.Len()
	if n == 1 {
		return Return{null.Null}, nil
	}

	for _, c := range node.Items()[1 : n-1] {
		if _, err := e.Eval(c, scope); err != nil {
			return nil, err
		}
	}

	return Continue{node.At(n - 1), scope}, nil
}

// [function, [params...], body]
func (e *T) function(node *list.T, scope *env.T) (signal, error) {
	s, err := shape(node, 3, 3)
	if err != nil {
		return nil, err
	}

	params, ok := s[1].(*list.T)
	if !ok {
		return nil, malformed(node, "parameters must be an array")
	}

	return Return{&Closure{
		body:   s[2],
		engine: e,
		params: params,
		scope:  scope,
	}}, nil
}

// [global, name, value]
func (e *T) global(node *list.T, scope *env.T) (signal, error) {
	s, err := shape(node, 3, 3)
	if err != nil {
		return nil, err
	}

	name, err := symbol(node, s[1])
	if err != nil {
		return nil, err
	}

	v, err := e.Eval(s[2], scope)
	if err != nil {
		return nil, err
	}

	return Return{scope.Set(name, v)}, nil
}

// [if, condition, then, else?]
func (e *T) ifForm(node *list.T, scope *env.T) (signal, error) {
	s, err := shape(node, 3, 4)
	if err != nil {
		return nil, err
	}

	v, err := e.Eval(s[1], scope)
	if err != nil {
		return nil, err
	}

	switch {
	case boolean.Value(v):
		return Continue{s[2], scope}, nil
	case len(s) == 4:
		return Continue{s[3], scope}, nil
	}

	return Return{null.Null}, nil
}

// [let, [name, value, ...], body]
func (e *T) let(node *list.T, scope *env.T) (signal, error) {
	s, err := shape(node, 3, 3)
	if err != nil {
		return nil, err
	}

	bindings, ok := s[1].(*list.T)
	if !ok || bindings.Len()%2 != 0 {
		return nil, malformed(node, "bindings must be an array of names and values")
	}

	child := env.Child(scope)

	items := bindings.Items()
	for i := 0; i < len(items); i += 2 {
		name, err := symbol(node, items[i])
		if err != nil {
			return nil, err
		}

		v, err := e.Eval(items[i+1], child)
		if err != nil {
			return nil, err
		}

		child.Set(name, v)
	}

	return Continue{s[2], child}, nil
}

// [macroexpand, form]
func (e *T) macroexpandForm(node *list.T, scope *env.T) (signal, error) {
	s, err := shape(node, 2, 2)
	if err != nil {
		return nil, err
	}

	v, err := e.macroExpand(s[1], scope)
	if err != nil {
		return nil, err
	}

	return Return{v}, nil
}

// [quasiquote, template]
func (e *T) quasiquoteForm(node *list.T, scope *env.T) (signal, error) {
	s, err := shape(node, 2, 2)
	if err != nil {
		return nil, err
	}

	return Continue{e.quasiquote(s[1]), scope}, nil
}

// [quasiquoteexpand, template]
func (e *T) quasiquoteexpand(node *list.T) (signal, error) {
	s, err := shape(node, 2, 2)
	if err != nil {
		return nil, err
	}

	return Return{e.quasiquote(s[1])}, nil
}

// [quote, form]
func (e *T) quote(node *list.T) (signal, error) {
	s, err := shape(node, 2, 2)
	if err != nil {
		return nil, err
	}

	return Return{s[1]}, nil
}

// [try, form, [catch, name, handler]?]
func (e *T) try(node *list.T, scope *env.T) (signal, error) {
	s, err := shape(node, 2, 3)
	if err != nil {
		return nil, err
	}

	var (
		name    *sym.T
		handler cell.T
	)

	if len(s) == 3 {
		c, ok := s[2].(*list.T)
		if !ok || c.Len() != 3 || !e.tagged(c, e.names.catch) {
			return nil, malformed(node, "expected [catch, name, handler]")
		}

		name, err = symbol(node, c.At(1))
		if err != nil {
			return nil, err
		}

		handler = c.At(2)
	}

	v, err := e.Eval(s[1], scope)
	if err == nil {
		return Return{v}, nil
	}

	if handler == nil || failure.KindOf(err) == failure.Interrupted {
		return nil, err
	}

	child := env.Child(scope)
	child.Set(name, errsys.New(err))

	v, err = e.Eval(handler, child)
	if err != nil {
		return nil, err
	}

	return Return{v}, nil
}

func malformed(node *list.T, format string, args ...interface{}) error {
	return failure.New(failure.FormShape, format, args...).
		With("form", describe(node))
}

func shape(node *list.T, min, max int) ([]cell.T, error) {
	n := node.Len()
	if n < min || n > max {
		return nil, malformed(node, "invalid '%s' form", describe(node.At(0)))
	}

	return node.Items(), nil
}

func symbol(node *list.T, c cell.T) (*sym.T, error) {
	s, ok := c.(*sym.T)
	if !ok {
		return nil, malformed(node, "%s is not a symbol", describe(c))
	}

	return s, nil
}

func describe(c cell.T) (s string) {
	defer func() {
		if recover() != nil {
			s = "<" + c.Name() + ">"
		}
	}()

	return literal.String(c)
}
