package naming

import (
	"fmt"

	"github.com/smasher164/stlc/syntax"
	"github.com/smasher164/stlc/term"
)

// MissingBindingError reports a variable with no enclosing binder of its name.
type MissingBindingError struct {
	Name term.Name
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("variable %q is not bound", e.Name.String())
}

// UnexpectedTypeError reports a term whose type differs from the one its
// position demands.
type UnexpectedTypeError struct {
	Term     syntax.Term
	Type     term.Ty
	Expected term.Ty
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("unexpected type %v for term %v, expected %v", e.Type, e.Term, e.Expected)
}

// ExpectedArrowError reports an application whose function is not an arrow.
type ExpectedArrowError struct {
	Term syntax.Term
	Type term.Ty
}

func (e *ExpectedArrowError) Error() string {
	return fmt.Sprintf("arrow type expected for term %v, got %v", e.Term, e.Type)
}

// InvalidRecursionError reports a mu binder not of the form ((A -> B) -> B).
type InvalidRecursionError struct {
	Bind term.Binding
}

func (e *InvalidRecursionError) Error() string {
	return fmt.Sprintf("mu binder %v must have a type of the form ((A -> B) -> B)", e.Bind)
}

type TooDeepError struct {
	Depth int
}

func (e *TooDeepError) Error() string {
	return fmt.Sprintf("binder nesting exceeds %d (depth %d)", term.MaxDepth, e.Depth)
}

// MissingNameError reports an index with no binder on the restore stack.
// Terms built by Desugar and reduced by eval never produce it.
type MissingNameError struct {
	Index term.Var
}

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("internal error: missing variable name for index %d", e.Index)
}

// NoFreshNameError reports that a binder had to be renamed to avoid capture
// but every single-letter name was already in scope.
type NoFreshNameError struct {
	Name term.Name
}

func (e *NoFreshNameError) Error() string {
	return fmt.Sprintf("no fresh name available to rename binder %q", e.Name.String())
}
