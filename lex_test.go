package gocalc

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	testCases := []struct {
		input  string
		tokens []Token
	}{
		{
			input: "",
			tokens: []Token{
				{Kind: TokenEOF, Pos: 0},
			},
		},
		{
			input: "  2  +   3 ",
			tokens: []Token{
				{Kind: TokenInteger, Value: 2, Pos: 2},
				{Kind: TokenPlus, Pos: 5},
				{Kind: TokenInteger, Value: 3, Pos: 9},
				{Kind: TokenEOF, Pos: 11},
			},
		},
		{
			input: "(12*3)/0042-7",
			tokens: []Token{
				{Kind: TokenLParen, Pos: 0},
				{Kind: TokenInteger, Value: 12, Pos: 1},
				{Kind: TokenStar, Pos: 3},
				{Kind: TokenInteger, Value: 3, Pos: 4},
				{Kind: TokenRParen, Pos: 5},
				{Kind: TokenSlash, Pos: 6},
				{Kind: TokenInteger, Value: 42, Pos: 7},
				{Kind: TokenMinus, Pos: 11},
				{Kind: TokenInteger, Value: 7, Pos: 12},
				{Kind: TokenEOF, Pos: 13},
			},
		},
		{
			input: "1\t\n\r\v\f2",
			tokens: []Token{
				{Kind: TokenInteger, Value: 1, Pos: 0},
				{Kind: TokenInteger, Value: 2, Pos: 6},
				{Kind: TokenEOF, Pos: 7},
			},
		},
		{
			input: " 　7",
			tokens: []Token{
				{Kind: TokenInteger, Value: 7, Pos: 2},
				{Kind: TokenEOF, Pos: 3},
			},
		},
	}
	for _, tc := range testCases {
		got, err := Tokenize(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.tokens, got, tc.input)
	}
}

func TestLexEOFRepeats(t *testing.T) {
	l := NewLexer(strings.NewReader("1"))
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenInteger, tok.Kind)
	for i := 0; i < 3; i++ {
		tok, err = l.Next()
		require.NoError(t, err)
		assert.Equal(t, TokenEOF, tok.Kind)
	}
}

func TestLexErrors(t *testing.T) {
	testCases := []struct {
		input string
		typ   error
		text  string
		pos   int
	}{
		{"2 @ 3", ErrUnexpectedChar, "@", 2},
		{"1.5", ErrUnexpectedChar, ".", 1},
		{"x", ErrUnexpectedChar, "x", 0},
		{"3 ÷ 4", ErrUnexpectedChar, "÷", 2},
		{"1 + ٣", ErrUnexpectedChar, "٣", 4},
		{"99999999999999999999", ErrLiteralRange, "99999999999999999999", 0},
	}
	for _, tc := range testCases {
		_, err := Tokenize(tc.input)
		var lerr *LexicalError
		if !errors.As(err, &lerr) {
			t.Errorf("%q should have failed to lex, got %v", tc.input, err)
			continue
		}
		if got, want := lerr.Type, tc.typ; got != want {
			t.Errorf("Wrong type for %q: Got %v Want %v", tc.input, got, want)
		}
		if got, want := lerr.Text, tc.text; got != want {
			t.Errorf("Wrong text for %q: Got %v Want %v", tc.input, got, want)
		}
		if got, want := lerr.Pos, tc.pos; got != want {
			t.Errorf("Wrong pos for %q: Got %v Want %v", tc.input, got, want)
		}
	}
}

type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestLexReadError(t *testing.T) {
	boom := errors.New("boom")
	for _, input := range []string{"12", "1 + ", "(3"} {
		l := NewLexer(io.MultiReader(strings.NewReader(input), errReader{boom}))
		var err error
		for i := 0; i < 10 && err == nil; i++ {
			var tok Token
			tok, err = l.Next()
			if err == nil {
				require.NotEqual(t, TokenEOF, tok.Kind, input)
			}
		}
		assert.True(t, errors.Is(err, boom), "%q: %v", input, err)

		p := NewParser(NewLexer(io.MultiReader(strings.NewReader(input), errReader{boom})))
		_, err = p.Parse()
		assert.True(t, errors.Is(err, boom), "%q: %v", input, err)
	}
}

func TestLexErrorMessage(t *testing.T) {
	_, err := Tokenize("2 @ 3")
	require.Error(t, err)
	assert.Equal(t, `lexical error: unexpected character "@" (pos 2)`, err.Error())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "Token(INTEGER, 42)", Token{Kind: TokenInteger, Value: 42}.String())
	assert.Equal(t, `Token(MUL, "*")`, Token{Kind: TokenStar}.String())
	assert.Equal(t, `Token(EOF, "end of input")`, Token{Kind: TokenEOF}.String())
	assert.Equal(t, "TokenKind(42)", TokenKind(42).String())
}
