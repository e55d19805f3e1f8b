package gocalc

import (
	"strings"
)

// DefaultMaxDepth is the default limit on parenthesis nesting.
const DefaultMaxDepth = 256

// Parser builds expression trees from the tokens of a Lexer.
//
//	expression := term ( (PLUS | MINUS) term )*
//	term       := factor ( (STAR | SLASH) factor )*
//	factor     := INTEGER | LPAREN expression RPAREN
type Parser struct {
	lex      *Lexer
	tok      Token
	started  bool
	depth    int
	maxDepth int
}

func NewParser(l *Lexer) *Parser {
	return &Parser{
		lex:      l,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth limits how deeply parentheses may nest. n <= 0 disables the
// limit.
func (p *Parser) SetMaxDepth(n int) {
	p.maxDepth = n
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) start() error {
	if p.started {
		return nil
	}
	p.started = true
	return p.advance()
}

func (p *Parser) newError(t error) error {
	if p.tok.Kind == TokenEOF && t == ErrUnexpectedToken {
		t = ErrUnexpectedEnd
	}
	return &ParsingError{Type: t, Token: p.tok}
}

// eat consumes the current token, which must be of kind k.
func (p *Parser) eat(k TokenKind) error {
	if p.tok.Kind != k {
		return p.newError(ErrUnexpectedToken)
	}
	return p.advance()
}

func (p *Parser) factor() (Node, error) {
	switch p.tok.Kind {
	case TokenInteger:
		node := &Literal{Value: p.tok.Value}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil
	case TokenLParen:
		if p.maxDepth > 0 && p.depth >= p.maxDepth {
			return nil, p.newError(ErrTooDeep)
		}
		p.depth++
		defer func() { p.depth-- }()
		if err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.eat(TokenRParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, p.newError(ErrUnexpectedToken)
}

func (p *Parser) term() (Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokenStar || p.tok.Kind == TokenSlash {
		op := OpMultiply
		if p.tok.Kind == TokenSlash {
			op = OpDivide
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = &BinaryOp{Left: node, Op: op, Right: right}
	}
	return node, nil
}

func (p *Parser) expression() (Node, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == TokenPlus || p.tok.Kind == TokenMinus {
		op := OpAdd
		if p.tok.Kind == TokenMinus {
			op = OpSubtract
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = &BinaryOp{Left: node, Op: op, Right: right}
	}
	return node, nil
}

// ParseExpression parses one expression and stops at the first token that
// cannot continue it. Whatever follows is left unread.
func (p *Parser) ParseExpression() (Node, error) {
	if err := p.start(); err != nil {
		return nil, err
	}
	return p.expression()
}

// Parse parses one expression and requires it to span the whole input.
func (p *Parser) Parse() (Node, error) {
	node, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokenEOF {
		return nil, p.newError(ErrTrailingInput)
	}
	return node, nil
}

// ParseString parses s with the default nesting limit.
func ParseString(s string) (Node, error) {
	return NewParser(NewLexer(strings.NewReader(s))).Parse()
}
