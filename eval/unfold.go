package eval

import "github.com/smasher164/stlc/term"

// Unfold performs one guarded unfolding of (mu f:((A -> B) -> B). body) applied
// to arg. Every self application (f k) in body becomes (k arg); any remaining
// occurrence of f is replaced by (\f:(A -> B). (f arg)).
func Unfold(mu term.Mu, arg term.Term) term.Term {
	self, ok := mu.Bind.Type.(term.TyArr)
	if !ok {
		panic("mu binder is not an arrow: " + mu.Bind.String())
	}
	cont, ok := self.From.(term.TyArr)
	if !ok {
		panic("mu binder takes no continuation: " + mu.Bind.String())
	}
	body := pushArg(mu.Body, 0, Shift(arg, Up, 0))
	bridge := term.Abs{
		Bind: term.Binding{Name: mu.Bind.Name, Type: cont},
		Body: term.App{Fn: term.Var(0), Arg: Shift(arg, Up, 0)},
	}
	return SubstTop(bridge, body)
}

// pushArg rewrites (self t2) to (t2 arg). arg is valid at the depth of t.
func pushArg(t term.Term, self int, arg term.Term) term.Term {
	switch t := t.(type) {
	case term.App:
		if v, ok := t.Fn.(term.Var); ok && int(v) == self {
			return term.App{Fn: pushArg(t.Arg, self, arg), Arg: arg}
		}
		return term.App{Fn: pushArg(t.Fn, self, arg), Arg: pushArg(t.Arg, self, arg)}
	case term.Abs:
		return term.Abs{Bind: t.Bind, Body: pushArg(t.Body, self+1, Shift(arg, Up, 0))}
	case term.Mu:
		return term.Mu{Bind: t.Bind, Body: pushArg(t.Body, self+1, Shift(arg, Up, 0))}
	}
	return t
}
