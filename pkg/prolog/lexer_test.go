package prolog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexerTokenKinds(t *testing.T) {
	lex := NewLexer("parent(tom, bob) :- true. % trailing comment\n")

	var kinds []TokenKind
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		kinds = append(kinds, tok.Kind)
		if tok.Kind == TokenEOF {
			break
		}
	}

	require.Equal(t, []TokenKind{
		TokenIdent, TokenLParen, TokenIdent, TokenComma, TokenIdent, TokenRParen,
		TokenPen, TokenIdent, TokenPeriod, TokenEOF,
	}, kinds)
}

func TestLexerColonWithoutDash(t *testing.T) {
	lex := NewLexer("foo : bar")
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, TokenIdent, tok.Kind)

	tok, err = lex.Next()
	require.NoError(t, err)
	require.Equal(t, TokenColon, tok.Kind)
}

func TestLexerLineCommentsAreSkipped(t *testing.T) {
	lex := NewLexer("% a whole comment line\nfoo.")
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, TokenIdent, tok.Kind)
	require.Equal(t, "foo", tok.Text)
	require.Equal(t, 2, tok.Loc.Line)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lex := NewLexer("foo.")
	first, err := lex.Peek()
	require.NoError(t, err)
	second, err := lex.Peek()
	require.NoError(t, err)
	require.Equal(t, first, second)

	consumed, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, first, consumed)
}

func TestLexerUnrecognizedCharacter(t *testing.T) {
	lex := NewLexer("foo # bar.")
	_, err := lex.Next() // foo
	require.NoError(t, err)
	_, err = lex.Next() // '#'
	require.Error(t, err)

	var syn *SyntaxError
	require.ErrorAs(t, err, &syn)
}
