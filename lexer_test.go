package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerStructuralTokens(t *testing.T) {
	tokens, err := NewLexer(`{}[],:`).Tokenize()
	require.NoError(t, err)
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenObjectStart, TokenObjectEnd,
		TokenArrayStart, TokenArrayEnd,
		TokenComma, TokenColon,
	}, kinds)
}

func TestLexerWordLiterals(t *testing.T) {
	tokens, err := NewLexer(`true false null`).Tokenize()
	require.NoError(t, err)
	var kinds []TokenKind
	for _, tok := range tokens {
		if tok.Kind != TokenWhitespace {
			kinds = append(kinds, tok.Kind)
		}
	}
	assert.Equal(t, []TokenKind{TokenTrue, TokenFalse, TokenNull}, kinds)
}

func TestLexerWordLiteralMismatch(t *testing.T) {
	_, err := NewLexer(`nul`).Tokenize()
	require.Error(t, err)
	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, InvalidLiteral, tokErr.Kind)
}

func TestLexerStringRetainsEscapesUndecoded(t *testing.T) {
	tokens, err := NewLexer(`"a\nbA"`).Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenString, tokens[0].Kind)
	assert.Equal(t, `a\nbA`, tokens[0].Text)
}

func TestLexerStringUnterminated(t *testing.T) {
	_, err := NewLexer(`"abc`).Tokenize()
	require.Error(t, err)
	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, UnterminatedString, tokErr.Kind)
}

func TestLexerStringNewlineInside(t *testing.T) {
	_, err := NewLexer("\"a\nb\"").Tokenize()
	require.Error(t, err)
	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, NewlineInString, tokErr.Kind)
}

func TestLexerStringInvalidEscape(t *testing.T) {
	_, err := NewLexer(`"a\qb"`).Tokenize()
	require.Error(t, err)
	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, InvalidEscape, tokErr.Kind)
}

func TestLexerStringBadUnicodeEscape(t *testing.T) {
	_, err := NewLexer(`"a\u12"`).Tokenize()
	require.Error(t, err)
	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, InvalidEscape, tokErr.Kind)
}

func TestLexerStringTrailingBackslash(t *testing.T) {
	_, err := NewLexer(`"a\`).Tokenize()
	require.Error(t, err)
	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, InvalidEscape, tokErr.Kind)
}

func TestLexerIllegalWhitespace(t *testing.T) {
	_, err := NewLexer(" ").Tokenize()
	require.Error(t, err)
	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, IllegalWhitespace, tokErr.Kind)
}

func TestLexerInvalidLiteral(t *testing.T) {
	_, err := NewLexer(`@`).Tokenize()
	require.Error(t, err)
	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, InvalidLiteral, tokErr.Kind)
}

func TestLexerNumberGreedyRun(t *testing.T) {
	tokens, err := NewLexer(`-12.34e+5`).Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, "-12.34e+5", tokens[0].Text)
}

func TestLexerNumberAdjacentToStructuralToken(t *testing.T) {
	tokens, err := NewLexer(`[1,2]`).Tokenize()
	require.NoError(t, err)
	var kinds []TokenKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{
		TokenArrayStart, TokenNumber, TokenComma, TokenNumber, TokenArrayEnd,
	}, kinds)
}

func TestLexerLineAndColumnTracking(t *testing.T) {
	tokens, err := NewLexer("{\n  \"a\": 1\n}").Tokenize()
	require.NoError(t, err)

	var stringTok, numberTok Token
	for _, tok := range tokens {
		if tok.Kind == TokenString {
			stringTok = tok
		}
		if tok.Kind == TokenNumber {
			numberTok = tok
		}
	}
	assert.Equal(t, 1, stringTok.Span.Line)
	assert.Equal(t, 2, stringTok.Span.Column)
	assert.Equal(t, 1, numberTok.Span.Line)
}

// TestLexerLexemesReconstructSource covers the universal testable property
// from §8: concatenating token lexemes in order reproduces the original
// source exactly.
func TestLexerLexemesReconstructSource(t *testing.T) {
	src := `{"a": [1, -2.5e10, true, false, null, "x\ny"]}`
	tokens, err := NewLexer(src).Tokenize()
	require.NoError(t, err)

	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok.Span.Lexeme()
	}
	assert.Equal(t, src, rebuilt)
}

func TestLexerWhitespacePermittedSet(t *testing.T) {
	tokens, err := NewLexer(" \t\n\r1").Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenWhitespace, tokens[0].Kind)
	assert.Equal(t, TokenNumber, tokens[1].Kind)
}

func TestTokenIsLiteral(t *testing.T) {
	assert.True(t, Token{Kind: TokenNumber}.IsLiteral())
	assert.True(t, Token{Kind: TokenString}.IsLiteral())
	assert.True(t, Token{Kind: TokenTrue}.IsLiteral())
	assert.True(t, Token{Kind: TokenFalse}.IsLiteral())
	assert.True(t, Token{Kind: TokenNull}.IsLiteral())
	assert.False(t, Token{Kind: TokenComma}.IsLiteral())
	assert.False(t, Token{Kind: TokenObjectStart}.IsLiteral())
}

func TestTokenizeErrorKindString(t *testing.T) {
	cases := map[TokenizeErrorKind]string{
		IllegalWhitespace:     "illegal whitespace",
		InvalidEscape:         "invalid escape",
		NewlineInString:       "newline in string",
		UnterminatedString:    "unterminated string",
		InvalidLiteral:        "invalid literal",
		TokenizeErrorKind(99): "unknown tokenize error",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
