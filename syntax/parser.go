package syntax

import "github.com/smasher164/stlc/term"

// Parse parses a complete term. The grammar separates every token pair with
// exactly one space where it allows one at all:
//
//	term ::= "unit" | name | "(" ( lam | mu | let | app ) ")"
//	lam  ::= "\" name ":" ty ". " term
//	mu   ::= "mu " name ":" ty ". " term
//	let  ::= "let " name " = " term " in " term
//	app  ::= term " " term
//	ty   ::= "Unit" | "(" ty " -> " ty ")"
func Parse(src string) (Term, error) {
	p := &parser{tokens: &tokenizer{src: src}}
	var err error
	if p.lookahead, err = p.tokens.next(); err != nil {
		return nil, err
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expect(EOF); err != nil {
		return nil, err
	}
	return t, nil
}

type parser struct {
	tokens    *tokenizer
	lookahead Token
}

func unexpected(tok Token) error {
	return &ParseError{Offset: tok.Offset, Kind: UnexpectedToken, Token: tok}
}

func (p *parser) peek() Token {
	return p.lookahead
}

func (p *parser) consume() (Token, error) {
	next, err := p.tokens.next()
	if err != nil {
		return Token{}, err
	}
	tok := p.lookahead
	p.lookahead = next
	return tok, nil
}

func (p *parser) expect(kind TokenKind) error {
	tok, err := p.consume()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return unexpected(tok)
	}
	return nil
}

func (p *parser) expectWord(w string) error {
	tok, err := p.consume()
	if err != nil {
		return err
	}
	if !tok.isWord(w) {
		return unexpected(tok)
	}
	return nil
}

func (p *parser) expectSeq(kinds ...TokenKind) error {
	for _, k := range kinds {
		if err := p.expect(k); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseName() (term.Name, error) {
	tok, err := p.consume()
	if err != nil {
		return 0, err
	}
	if tok.Kind != Ident {
		return 0, unexpected(tok)
	}
	return term.Name(tok.Text[0]), nil
}

func (p *parser) parseTerm() (Term, error) {
	tok, err := p.consume()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.isWord("unit"):
		return Unit{}, nil
	case tok.Kind == Ident:
		return Var(tok.Text[0]), nil
	case tok.Kind == LParen:
		var t Term
		switch la := p.peek(); {
		case la.Kind == Lambda:
			t, err = p.parseAbs()
		case la.isWord("mu"):
			t, err = p.parseMu()
		case la.isWord("let"):
			t, err = p.parseLet()
		default:
			t, err = p.parseApp()
		}
		if err != nil {
			return nil, err
		}
		if err := p.expect(RParen); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, unexpected(tok)
}

// parseBinding parses `name ":" ty ". "` shared by abstractions and mu.
func (p *parser) parseBinding() (term.Binding, error) {
	name, err := p.parseName()
	if err != nil {
		return term.Binding{}, err
	}
	if err := p.expect(Colon); err != nil {
		return term.Binding{}, err
	}
	ty, err := p.parseTy()
	if err != nil {
		return term.Binding{}, err
	}
	if err := p.expectSeq(Dot, Space); err != nil {
		return term.Binding{}, err
	}
	return term.Binding{Name: name, Type: ty}, nil
}

func (p *parser) parseAbs() (Term, error) {
	if err := p.expect(Lambda); err != nil {
		return nil, err
	}
	bind, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{bind, body}, nil
}

func (p *parser) parseMu() (Term, error) {
	if err := p.expectWord("mu"); err != nil {
		return nil, err
	}
	if err := p.expect(Space); err != nil {
		return nil, err
	}
	bind, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Mu{bind, body}, nil
}

func (p *parser) parseLet() (Term, error) {
	if err := p.expectWord("let"); err != nil {
		return nil, err
	}
	if err := p.expect(Space); err != nil {
		return nil, err
	}
	x, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expectSeq(Space, Equal, Space); err != nil {
		return nil, err
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expect(Space); err != nil {
		return nil, err
	}
	if err := p.expectWord("in"); err != nil {
		return nil, err
	}
	if err := p.expect(Space); err != nil {
		return nil, err
	}
	inT, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Let{x, t, inT}, nil
}

func (p *parser) parseApp() (Term, error) {
	fn, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expect(Space); err != nil {
		return nil, err
	}
	arg, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return App{fn, arg}, nil
}

func (p *parser) parseTy() (term.Ty, error) {
	tok, err := p.consume()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.isWord("Unit"):
		return term.TyUnit{}, nil
	case tok.Kind == LParen:
		from, err := p.parseTy()
		if err != nil {
			return nil, err
		}
		if err := p.expectSeq(Space, Arrow, Space); err != nil {
			return nil, err
		}
		to, err := p.parseTy()
		if err != nil {
			return nil, err
		}
		if err := p.expect(RParen); err != nil {
			return nil, err
		}
		return term.TyArr{From: from, To: to}, nil
	}
	return nil, unexpected(tok)
}
