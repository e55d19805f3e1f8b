package gocalc

import (
	"errors"
	"fmt"
)

// Error types. Every error returned by the pipeline unwraps to one of these,
// so callers can test with errors.Is.
var (
	ErrUnexpectedChar  = errors.New("unexpected character")
	ErrLiteralRange    = errors.New("integer literal out of range")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrTrailingInput   = errors.New("unexpected token after expression")
	ErrTooDeep         = errors.New("expression nested too deeply")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrIntegerOverflow = errors.New("integer overflow")
	ErrInvalidNode     = errors.New("invalid node")
)

// LexicalError is returned when the input holds something that is not a
// token.
type LexicalError struct {
	Type error  // ErrUnexpectedChar or ErrLiteralRange
	Text string // Offending input
	Pos  int    // Rune offset of Text
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: %v %q (pos %d)", e.Type, e.Text, e.Pos)
}

func (e *LexicalError) Unwrap() error {
	return e.Type
}

// ParsingError is returned when the token stream does not match the grammar.
type ParsingError struct {
	Type  error
	Token Token // Token at which parsing stopped
}

func (e *ParsingError) Error() string {
	if e.Type == ErrUnexpectedEnd {
		return fmt.Sprintf("parsing error: %v (pos %d)", e.Type, e.Token.Pos)
	}
	return fmt.Sprintf("parsing error: %v %q (pos %d)", e.Type, e.Token.Text(), e.Token.Pos)
}

func (e *ParsingError) Unwrap() error {
	return e.Type
}

// RuntimeError is returned when a well formed tree cannot be evaluated.
type RuntimeError struct {
	Type error
	Node Node
}

func (e *RuntimeError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("runtime error: %v", e.Type)
	}
	return fmt.Sprintf("runtime error: %v in %v", e.Type, e.Node)
}

func (e *RuntimeError) Unwrap() error {
	return e.Type
}
