package eval

import (
	"errors"
	"fmt"

	"github.com/smasher164/stlc/term"
)

// Reduce performs at most one rewrite of t and reports whether it made one.
//
// At an application it first tries to make progress in the function, then in
// the argument, and only then fires the application itself if its head is an
// abstraction (beta) or a mu (unfolding). Reduction continues under binders.
func Reduce(t term.Term) (term.Term, bool) {
	switch t := t.(type) {
	case term.App:
		if fn, ok := Reduce(t.Fn); ok {
			return term.App{Fn: fn, Arg: t.Arg}, true
		}
		if arg, ok := Reduce(t.Arg); ok {
			return term.App{Fn: t.Fn, Arg: arg}, true
		}
		switch fn := t.Fn.(type) {
		case term.Abs:
			return SubstTop(t.Arg, fn.Body), true
		case term.Mu:
			return Unfold(fn, t.Arg), true
		}
	case term.Abs:
		if body, ok := Reduce(t.Body); ok {
			return term.Abs{Bind: t.Bind, Body: body}, true
		}
	case term.Mu:
		if body, ok := Reduce(t.Body); ok {
			return term.Mu{Bind: t.Bind, Body: body}, true
		}
	}
	return t, false
}

// Evaluate reduces t until no rule applies. It does not return for terms
// without a normal form; use an Evaluator with MaxSteps to bound it.
func Evaluate(t term.Term) term.Term {
	for {
		next, ok := Reduce(t)
		if !ok {
			return t
		}
		t = next
	}
}

var (
	ErrStepLimit = errors.New("step limit reached")
	// ErrTooDeep reports a reduction that would need a de Bruijn index wider
	// than term.MaxDepth. Desugar bounds the source nesting only; beta can move
	// an argument's binders under the body's.
	ErrTooDeep = errors.New("term nested too deeply to reduce")
)

// Evaluator runs Reduce to a normal form with an optional bound.
type Evaluator struct {
	// MaxSteps bounds the number of rewrites; zero means no bound.
	MaxSteps int
	// Trace, if set, is called with every intermediate term.
	Trace func(step int, t term.Term)
}

// Run returns the normal form of t and the number of rewrites it took. When
// the bound is hit it returns the last term reached and ErrStepLimit. A step
// that would overflow an index leaves the last term reached and ErrTooDeep.
func (e Evaluator) Run(t term.Term) (res term.Term, steps int, err error) {
	defer func() {
		if r := recover(); r != nil {
			oe, ok := r.(*OverflowError)
			if !ok {
				panic(r)
			}
			res, err = t, fmt.Errorf("%w: %v", ErrTooDeep, oe)
		}
	}()
	for {
		next, ok := Reduce(t)
		if !ok {
			return t, steps, nil
		}
		if e.MaxSteps > 0 && steps >= e.MaxSteps {
			return t, steps, ErrStepLimit
		}
		t = next
		steps++
		if e.Trace != nil {
			e.Trace(steps, t)
		}
	}
}
