package syntax

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type TokenKind int

const (
	EOF TokenKind = iota
	LParen
	RParen
	Lambda
	Dot
	Colon
	Equal
	Arrow
	Space
	Ident
	Word
)

type Token struct {
	Offset int
	Kind   TokenKind
	Text   string
}

func (t Token) String() string {
	if t.Kind == EOF {
		return `"EOF"`
	}
	return strconv.Quote(t.Text)
}

func (t Token) isWord(w string) bool {
	return t.Kind == Word && t.Text == w
}

type tokenizer struct {
	src string
	off int
}

func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func (tz *tokenizer) next() (Token, error) {
	if tz.off >= len(tz.src) {
		return Token{Offset: tz.off, Kind: EOF}, nil
	}
	start := tz.off
	emit := func(kind TokenKind, n int) (Token, error) {
		tz.off += n
		return Token{Offset: start, Kind: kind, Text: tz.src[start:tz.off]}, nil
	}
	switch c := tz.src[start]; c {
	case '(':
		return emit(LParen, 1)
	case ')':
		return emit(RParen, 1)
	case '\\':
		return emit(Lambda, 1)
	case '.':
		return emit(Dot, 1)
	case ':':
		return emit(Colon, 1)
	case '=':
		return emit(Equal, 1)
	case ' ':
		return emit(Space, 1)
	case '-':
		if strings.HasPrefix(tz.src[start:], "->") {
			return emit(Arrow, 2)
		}
	default:
		if strings.HasPrefix(tz.src[start:], "λ") {
			return emit(Lambda, len("λ"))
		}
		if isLetter(c) {
			end := start
			for end < len(tz.src) && isLetter(tz.src[end]) {
				end++
			}
			if end-start == 1 && 'a' <= c && c <= 'z' {
				return emit(Ident, 1)
			}
			return emit(Word, end-start)
		}
	}
	r, _ := utf8.DecodeRuneInString(tz.src[start:])
	return Token{}, &ParseError{Offset: start, Kind: InvalidChar, Char: r}
}
