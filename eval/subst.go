// Package eval reduces nameless terms to normal form.
package eval

import (
	"fmt"

	"github.com/smasher164/stlc/term"
)

type Direction int

// OverflowError is the panic value of a Shift that would move an index out of
// [0, term.MaxDepth]. Evaluator.Run turns it into ErrTooDeep.
type OverflowError struct {
	Index int
	Dir   Direction
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("index %d shifted out of range", e.Index)
}

const (
	Down Direction = -1
	Up   Direction = 1
)

// Shift moves every free index of t at or above cutoff by one in direction d.
func Shift(t term.Term, d Direction, cutoff int) term.Term {
	switch t := t.(type) {
	case term.Unit:
		return t
	case term.Var:
		if int(t) < cutoff {
			return t
		}
		i := int(t) + int(d)
		if i < 0 || i > term.MaxDepth {
			panic(&OverflowError{Index: int(t), Dir: d})
		}
		return term.Var(i)
	case term.Abs:
		return term.Abs{Bind: t.Bind, Body: Shift(t.Body, d, cutoff+1)}
	case term.Mu:
		return term.Mu{Bind: t.Bind, Body: Shift(t.Body, d, cutoff+1)}
	case term.App:
		return term.App{Fn: Shift(t.Fn, d, cutoff), Arg: Shift(t.Arg, d, cutoff)}
	}
	panic("unreachable")
}

// Replace substitutes s for every occurrence of index j in t. Under a binder
// both j and the free indices of s move up by one; siblings of that binder
// keep seeing s unshifted.
func Replace(t term.Term, j int, s term.Term) term.Term {
	switch t := t.(type) {
	case term.Unit:
		return t
	case term.Var:
		if int(t) == j {
			return s
		}
		return t
	case term.Abs:
		return term.Abs{Bind: t.Bind, Body: Replace(t.Body, j+1, Shift(s, Up, 0))}
	case term.Mu:
		return term.Mu{Bind: t.Bind, Body: Replace(t.Body, j+1, Shift(s, Up, 0))}
	case term.App:
		return term.App{Fn: Replace(t.Fn, j, s), Arg: Replace(t.Arg, j, s)}
	}
	panic("unreachable")
}

// SubstTop substitutes s for the variable bound just outside body and removes
// that binder.
func SubstTop(s, body term.Term) term.Term {
	return Shift(Replace(body, 0, Shift(s, Up, 0)), Down, 0)
}
