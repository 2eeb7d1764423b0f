// Package naming converts between named and nameless terms. Desugar resolves
// names to de Bruijn indices while deriving the type of the term; Restore maps
// a nameless term back to names.
package naming

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/stlc/syntax"
	"github.com/smasher164/stlc/term"
)

// Context is the stack of live bindings, innermost first, so that the
// position of a binding is the index of a variable referring to it.
type Context struct {
	bindings []term.Binding
}

// Desugar resolves and type checks t in an empty context.
func Desugar(t syntax.Term) (term.Term, term.Ty, error) {
	var ctx Context
	return ctx.Desugar(t)
}

// Restore names t in an empty context.
func Restore(t term.Term) (syntax.Term, error) {
	var ctx Context
	return ctx.Restore(t)
}

// Depth is the number of live bindings.
func (c *Context) Depth() int {
	return len(c.bindings)
}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}

func (c *Context) push(b term.Binding) {
	c.bindings = prepend(b, c.bindings)
}

func (c *Context) pop() {
	c.bindings = c.bindings[1:]
}

func (c *Context) Desugar(t syntax.Term) (term.Term, term.Ty, error) {
	switch t := t.(type) {
	case syntax.Unit:
		return term.Unit{}, term.TyUnit{}, nil
	case syntax.Var:
		i := slices.IndexFunc(c.bindings, func(b term.Binding) bool { return b.Name == term.Name(t) })
		if i < 0 {
			return nil, nil, &MissingBindingError{term.Name(t)}
		}
		return term.Var(i), c.bindings[i].Type, nil
	case syntax.Abs:
		body, tyBody, err := c.desugarUnder(t.Bind, t.Body)
		if err != nil {
			return nil, nil, err
		}
		return term.Abs{Bind: t.Bind, Body: body}, term.TyArr{From: t.Bind.Type, To: tyBody}, nil
	case syntax.Mu:
		arr, ok := t.Bind.Type.(term.TyArr)
		if !ok {
			return nil, nil, &InvalidRecursionError{t.Bind}
		}
		k, ok := arr.From.(term.TyArr)
		if !ok || !term.TypeEquals(k.To, arr.To) {
			return nil, nil, &InvalidRecursionError{t.Bind}
		}
		body, tyBody, err := c.desugarUnder(t.Bind, t.Body)
		if err != nil {
			return nil, nil, err
		}
		if !term.TypeEquals(tyBody, k.To) {
			return nil, nil, &UnexpectedTypeError{t.Body, tyBody, k.To}
		}
		return term.Mu{Bind: t.Bind, Body: body}, k, nil
	case syntax.App:
		fn, tyFn, err := c.Desugar(t.Fn)
		if err != nil {
			return nil, nil, err
		}
		arg, tyArg, err := c.Desugar(t.Arg)
		if err != nil {
			return nil, nil, err
		}
		arr, ok := tyFn.(term.TyArr)
		if !ok {
			return nil, nil, &ExpectedArrowError{t.Fn, tyFn}
		}
		if !term.TypeEquals(arr.From, tyArg) {
			return nil, nil, &UnexpectedTypeError{t.Arg, tyArg, arr.From}
		}
		return term.App{Fn: fn, Arg: arg}, arr.To, nil
	case syntax.Let:
		// let x = t1 in t2 is ((\x:T1. t2) t1).
		t1, ty1, err := c.Desugar(t.T)
		if err != nil {
			return nil, nil, err
		}
		bind := term.Binding{Name: t.X, Type: ty1}
		t2, ty2, err := c.desugarUnder(bind, t.InT)
		if err != nil {
			return nil, nil, err
		}
		return term.App{Fn: term.Abs{Bind: bind, Body: t2}, Arg: t1}, ty2, nil
	}
	panic("unreachable")
}

func (c *Context) desugarUnder(b term.Binding, body syntax.Term) (term.Term, term.Ty, error) {
	if len(c.bindings) >= term.MaxDepth {
		return nil, nil, &TooDeepError{len(c.bindings) + 1}
	}
	c.push(b)
	defer c.pop()
	return c.Desugar(body)
}

func (c *Context) Restore(t term.Term) (syntax.Term, error) {
	switch t := t.(type) {
	case term.Unit:
		return syntax.Unit{}, nil
	case term.Var:
		if int(t) >= len(c.bindings) {
			return nil, &MissingNameError{t}
		}
		return syntax.Var(c.bindings[t].Name), nil
	case term.Abs:
		bind, body, err := c.restoreUnder(t.Bind, t.Body)
		if err != nil {
			return nil, err
		}
		return syntax.Abs{Bind: bind, Body: body}, nil
	case term.Mu:
		bind, body, err := c.restoreUnder(t.Bind, t.Body)
		if err != nil {
			return nil, err
		}
		return syntax.Mu{Bind: bind, Body: body}, nil
	case term.App:
		fn, err := c.Restore(t.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := c.Restore(t.Arg)
		if err != nil {
			return nil, err
		}
		return syntax.App{Fn: fn, Arg: arg}, nil
	}
	panic("unreachable")
}

func (c *Context) restoreUnder(b term.Binding, body term.Term) (term.Binding, syntax.Term, error) {
	name, err := c.pickFreshName(b.Name, body)
	if err != nil {
		return term.Binding{}, nil, err
	}
	b.Name = name
	c.push(b)
	defer c.pop()
	restored, err := c.Restore(body)
	return b, restored, err
}

var alphabet = lo.Map(make([]struct{}, 26), func(_ struct{}, i int) term.Name {
	return term.Name('a' + i)
})

// pickFreshName keeps n unless a binding of the same name is referenced from
// body, in which case n would capture it.
func (c *Context) pickFreshName(n term.Name, body term.Term) (term.Name, error) {
	captures := false
	for i, b := range c.bindings {
		if b.Name == n && term.FreeIn(i+1, body) {
			captures = true
			break
		}
	}
	if !captures {
		return n, nil
	}
	scope := set.From(lo.Map(c.bindings, func(b term.Binding, _ int) term.Name { return b.Name }))
	fresh := lo.Filter(alphabet, func(m term.Name, _ int) bool { return !scope.Contains(m) })
	if len(fresh) == 0 {
		return 0, &NoFreshNameError{n}
	}
	return fresh[0], nil
}
