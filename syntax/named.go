// Package syntax holds named terms as written by the user, along with the
// tokenizer and parser producing them.
package syntax

import "github.com/smasher164/stlc/term"

type Term interface {
	isTerm()
	String() string
}

type Unit struct{}

func (Unit) isTerm()        {}
func (Unit) String() string { return "unit" }

type Var term.Name

func (Var) isTerm() {}

func (v Var) String() string {
	return term.Name(v).String()
}

type Abs struct {
	Bind term.Binding
	Body Term
}

func (Abs) isTerm() {}

func (a Abs) String() string {
	return `(\` + a.Bind.String() + ". " + a.Body.String() + ")"
}

type Mu struct {
	Bind term.Binding
	Body Term
}

func (Mu) isTerm() {}

func (m Mu) String() string {
	return "(mu " + m.Bind.String() + ". " + m.Body.String() + ")"
}

type App struct {
	Fn  Term
	Arg Term
}

func (App) isTerm() {}

func (a App) String() string {
	return "(" + a.Fn.String() + " " + a.Arg.String() + ")"
}

type Let struct {
	X   term.Name
	T   Term
	InT Term
}

func (Let) isTerm() {}

func (l Let) String() string {
	return "(let " + l.X.String() + " = " + l.T.String() + " in " + l.InT.String() + ")"
}
