package term

import (
	"math"
	"strconv"
)

// MaxDepth is the deepest binder nesting an index can address.
const MaxDepth = math.MaxUint8

// Term is a nameless (de Bruijn) term.
type Term interface {
	isTerm()
	DeBruijnString() string
}

type Unit struct{}

func (Unit) isTerm()                {}
func (Unit) DeBruijnString() string { return "unit" }

// Var counts binders from the innermost enclosing one outward.
type Var uint8

func (Var) isTerm() {}

func (v Var) DeBruijnString() string {
	return strconv.Itoa(int(v))
}

type Abs struct {
	Bind Binding
	Body Term
}

func (Abs) isTerm() {}

func (a Abs) DeBruijnString() string {
	return "(λ:" + a.Bind.Type.String() + ". " + a.Body.DeBruijnString() + ")"
}

// Mu is a recursive binder. Its bound variable denotes the pending argument
// of the application that unfolds it.
type Mu struct {
	Bind Binding
	Body Term
}

func (Mu) isTerm() {}

func (m Mu) DeBruijnString() string {
	return "(μ:" + m.Bind.Type.String() + ". " + m.Body.DeBruijnString() + ")"
}

type App struct {
	Fn  Term
	Arg Term
}

func (App) isTerm() {}

func (a App) DeBruijnString() string {
	return "(" + a.Fn.DeBruijnString() + " " + a.Arg.DeBruijnString() + ")"
}

// Equal reports whether l and r are the same nameless term. Binder names are
// ignored, binder types are not.
func Equal(l, r Term) bool {
	switch r := r.(type) {
	case Unit:
		_, ok := l.(Unit)
		return ok
	case Var:
		l, ok := l.(Var)
		return ok && l == r
	case Abs:
		l, ok := l.(Abs)
		return ok && TypeEquals(l.Bind.Type, r.Bind.Type) && Equal(l.Body, r.Body)
	case Mu:
		l, ok := l.(Mu)
		return ok && TypeEquals(l.Bind.Type, r.Bind.Type) && Equal(l.Body, r.Body)
	case App:
		l, ok := l.(App)
		return ok && Equal(l.Fn, r.Fn) && Equal(l.Arg, r.Arg)
	}
	return false
}

// FreeIn reports whether the variable with index i, as seen from the top of t,
// occurs in t.
func FreeIn(i int, t Term) bool {
	switch t := t.(type) {
	case Var:
		return int(t) == i
	case Abs:
		return FreeIn(i+1, t.Body)
	case Mu:
		return FreeIn(i+1, t.Body)
	case App:
		return FreeIn(i, t.Fn) || FreeIn(i, t.Arg)
	}
	return false
}

// Scoped reports whether every index in t points at one of the depth enclosing
// binders or a binder inside t.
func Scoped(depth int, t Term) bool {
	switch t := t.(type) {
	case Var:
		return int(t) < depth
	case Abs:
		return Scoped(depth+1, t.Body)
	case Mu:
		return Scoped(depth+1, t.Body)
	case App:
		return Scoped(depth, t.Fn) && Scoped(depth, t.Arg)
	}
	return true
}
