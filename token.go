package gocalc

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInteger
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
)

var tokenNames = [...]string{
	TokenEOF:     "EOF",
	TokenInteger: "INTEGER",
	TokenPlus:    "PLUS",
	TokenMinus:   "MINUS",
	TokenStar:    "MUL",
	TokenSlash:   "DIV",
	TokenLParen:  "LPAREN",
	TokenRParen:  "RPAREN",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenNames[k]
}

// Token is a single lexical unit. Value is only set for TokenInteger and Pos
// is the rune offset of the token in its input.
type Token struct {
	Kind  TokenKind
	Value int64
	Pos   int
}

// Text returns the token as it would appear in source.
func (t Token) Text() string {
	switch t.Kind {
	case TokenInteger:
		return strconv.FormatInt(t.Value, 10)
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}
	return "end of input"
}

func (t Token) String() string {
	if t.Kind == TokenInteger {
		return fmt.Sprintf("Token(%v, %d)", t.Kind, t.Value)
	}
	return fmt.Sprintf("Token(%v, %q)", t.Kind, t.Text())
}
