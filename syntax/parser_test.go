package syntax

import (
	"errors"
	"testing"

	"github.com/smasher164/stlc/term"
)

var unitToUnit = term.TyArr{From: term.TyUnit{}, To: term.TyUnit{}}

func TestTokenize(t *testing.T) {
	tz := &tokenizer{src: `(\x:(Unit -> Unit). unit)`}
	want := []TokenKind{LParen, Lambda, Ident, Colon, LParen, Word, Space, Arrow, Space, Word, RParen, Dot, Space, Word, RParen, EOF}
	for i, kind := range want {
		tok, err := tz.next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if tok.Kind != kind {
			t.Fatalf("token %d = %v (kind %d), want kind %d", i, tok, tok.Kind, kind)
		}
	}
}

func TestTokenizeLambdaRune(t *testing.T) {
	tz := &tokenizer{src: "λx"}
	tok, err := tz.next()
	if err != nil || tok.Kind != Lambda {
		t.Fatalf("got %v, %v; want lambda", tok, err)
	}
	tok, err = tz.next()
	if err != nil || tok.Kind != Ident || tok.Offset != len("λ") {
		t.Fatalf("got %v at %d, %v; want identifier at %d", tok, tok.Offset, err, len("λ"))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Term
	}{
		{"unit", Unit{}},
		{"x", Var('x')},
		{`(\x:Unit. x)`, Abs{term.Binding{Name: 'x', Type: term.TyUnit{}}, Var('x')}},
		{"(x y)", App{Var('x'), Var('y')}},
		{
			`(\f:(Unit -> Unit). (f unit))`,
			Abs{term.Binding{Name: 'f', Type: unitToUnit}, App{Var('f'), Unit{}}},
		},
		{
			`(let i = (\z:Unit. z) in (i unit))`,
			Let{'i', Abs{term.Binding{Name: 'z', Type: term.TyUnit{}}, Var('z')}, App{Var('i'), Unit{}}},
		},
		{
			`(mu f:((Unit -> Unit) -> Unit). (f (\y:Unit. y)))`,
			Mu{
				term.Binding{Name: 'f', Type: term.TyArr{From: unitToUnit, To: term.TyUnit{}}},
				App{Var('f'), Abs{term.Binding{Name: 'y', Type: term.TyUnit{}}, Var('y')}},
			},
		},
		{"(λx:Unit. x)", Abs{term.Binding{Name: 'x', Type: term.TyUnit{}}, Var('x')}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePrintRoundTrip(t *testing.T) {
	inputs := []string{
		`((\x:((Unit -> Unit) -> (Unit -> Unit)). (x (\y:Unit. y))) (\z:(Unit -> Unit). z))`,
		`(let i = (\z:(Unit -> Unit). z) in ((\x:((Unit -> Unit) -> (Unit -> Unit)). (x (\y:Unit. y))) i))`,
		`((\x:Unit. x) (\y:Unit. y))`,
		`((mu f:((Unit -> Unit) -> Unit). (f (\y:Unit. y))) unit)`,
		`(\x:Unit. (\y:(Unit -> (Unit -> Unit)). ((y x) x)))`,
	}
	for _, in := range inputs {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got.String() != in {
			t.Errorf("Parse(%q).String() = %q", in, got.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		kind   ErrorKind
		offset int
		msg    string
	}{
		{`(\x. x)`, UnexpectedToken, 3, `parse error at offset 3: unexpected token "."`},
		{`(\x:Unit. !x)`, InvalidChar, 10, `parse error at offset 10: invalid character '!'`},
		{`((\x:Unit. x) unit`, UnexpectedToken, 18, `parse error at offset 18: unexpected token "EOF"`},
		{`(x y))`, UnexpectedToken, 5, `parse error at offset 5: unexpected token ")"`},
		{`(x  y)`, UnexpectedToken, 3, `parse error at offset 3: unexpected token " "`},
		{`(\X:Unit. X)`, UnexpectedToken, 2, `parse error at offset 2: unexpected token "X"`},
		{`(\x:Bool. x)`, UnexpectedToken, 4, `parse error at offset 4: unexpected token "Bool"`},
		{`(\x:(Unit - Unit). x)`, InvalidChar, 10, `parse error at offset 10: invalid character '-'`},
		{``, UnexpectedToken, 0, `parse error at offset 0: unexpected token "EOF"`},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error = %v, want *ParseError", tt.in, err)
			continue
		}
		if perr.Kind != tt.kind || perr.Offset != tt.offset {
			t.Errorf("Parse(%q) = %v at %d, want %v at %d", tt.in, perr.Kind, perr.Offset, tt.kind, tt.offset)
		}
		if perr.Error() != tt.msg {
			t.Errorf("Parse(%q) message %q, want %q", tt.in, perr.Error(), tt.msg)
		}
	}
}

func TestCaret(t *testing.T) {
	src := `(\x. x)`
	_, err := Parse(src)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want parse error, got %v", err)
	}
	if got, want := perr.Caret(src), "(\\x. x)\n   ^"; got != want {
		t.Errorf("Caret = %q, want %q", got, want)
	}

	src = "(λx. x)"
	_, err = Parse(src)
	if !errors.As(err, &perr) {
		t.Fatalf("want parse error, got %v", err)
	}
	if got, want := perr.Caret(src), "(λx. x)\n   ^"; got != want {
		t.Errorf("Caret = %q, want %q", got, want)
	}
}
