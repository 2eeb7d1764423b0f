package term

import "fmt"

// Name is a single-character variable name.
type Name byte

func (n Name) String() string {
	return string(rune(n))
}

type Ty interface {
	isType()
	fmt.Stringer
}

type TyUnit struct{}

func (TyUnit) isType() {}

func (TyUnit) String() string {
	return "Unit"
}

type TyArr struct {
	From, To Ty
}

func (TyArr) isType() {}

func (t TyArr) String() string {
	return "(" + t.From.String() + " -> " + t.To.String() + ")"
}

// TypeEquals reports whether l and r are structurally the same type.
func TypeEquals(l, r Ty) bool {
	switch r := r.(type) {
	case TyUnit:
		_, ok := l.(TyUnit)
		return ok
	case TyArr:
		l, ok := l.(TyArr)
		return ok && TypeEquals(l.From, r.From) && TypeEquals(l.To, r.To)
	}
	return false
}

// Binding is the name and declared type attached to every binder.
type Binding struct {
	Name Name
	Type Ty
}

func (b Binding) String() string {
	return b.Name.String() + ":" + b.Type.String()
}
