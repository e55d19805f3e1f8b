package gocalc

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Lexer turns text into tokens, one per call to Next.
type Lexer struct {
	buf *bufio.Reader
	pos int
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, error) {
	r, _, err := l.buf.ReadRune()
	if err == nil {
		l.pos++
	}
	return r, err
}

func (l *Lexer) unreadRune() error {
	err := l.buf.UnreadRune()
	if err == nil {
		l.pos--
	}
	return err
}

func (l *Lexer) skipWhite() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return l.unreadRune()
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (l *Lexer) integer(start int) (Token, error) {
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	i, err := strconv.ParseInt(buf.String(), 10, 64)
	if err != nil {
		return Token{}, &LexicalError{Type: ErrLiteralRange, Text: buf.String(), Pos: start}
	}
	return Token{Kind: TokenInteger, Value: i, Pos: start}, nil
}

// Next returns the next token. Once the input is exhausted every call returns
// a TokenEOF token.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipWhite(); err != nil && err != io.EOF {
		return Token{}, err
	}

	start := l.pos
	r, err := l.readRune()
	if err == io.EOF {
		return Token{Kind: TokenEOF, Pos: start}, nil
	}
	if err != nil {
		return Token{}, err
	}

	var kind TokenKind
	switch r {
	case '+':
		kind = TokenPlus
	case '-':
		kind = TokenMinus
	case '*':
		kind = TokenStar
	case '/':
		kind = TokenSlash
	case '(':
		kind = TokenLParen
	case ')':
		kind = TokenRParen
	default:
		if isDigit(r) {
			l.unreadRune()
			return l.integer(start)
		}
		return Token{}, &LexicalError{Type: ErrUnexpectedChar, Text: string(r), Pos: start}
	}
	return Token{Kind: kind, Pos: start}, nil
}

// Tokenize scans s completely. The returned slice ends with the TokenEOF
// token.
func Tokenize(s string) ([]Token, error) {
	l := NewLexer(strings.NewReader(s))
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}
