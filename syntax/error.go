package syntax

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type ErrorKind int

const (
	InvalidChar ErrorKind = iota
	UnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidChar:
		return "invalid character"
	case UnexpectedToken:
		return "unexpected token"
	}
	return "unknown error"
}

// ParseError is a lexical or syntactic error at a byte offset of the source.
type ParseError struct {
	Offset int
	Kind   ErrorKind
	Char   rune  // InvalidChar
	Token  Token // UnexpectedToken
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidChar:
		return fmt.Sprintf("parse error at offset %d: %v %q", e.Offset, e.Kind, e.Char)
	default:
		return fmt.Sprintf("parse error at offset %d: %v %v", e.Offset, e.Kind, e.Token)
	}
}

// Caret returns the source line holding the error with a caret under it.
func (e *ParseError) Caret(src string) string {
	off := min(max(e.Offset, 0), len(src))
	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := len(src)
	if i := strings.IndexByte(src[off:], '\n'); i >= 0 {
		end = off + i
	}
	col := utf8.RuneCountInString(src[start:off])
	return src[start:end] + "\n" + strings.Repeat(" ", col) + "^"
}
