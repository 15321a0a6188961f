package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allTokens(input string) []Token {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	for _, input := range []string{"select", "SELECT", "Select", "SeLeCt"} {
		toks := allTokens(input)
		require.Equal(t, SELECT, toks[0].Type, input)
	}
}

func TestIdentifiersFoldToLowerCase(t *testing.T) {
	toks := allTokens("MyTable")
	require.Equal(t, IDENT, toks[0].Type)
	require.Equal(t, "mytable", toks[0].Literal)
}

func TestStringLiteralEscaping(t *testing.T) {
	toks := allTokens(`'it''s a test'`)
	require.Equal(t, STRING, toks[0].Type)
	require.Equal(t, "it's a test", toks[0].Literal)
}

func TestLineComment(t *testing.T) {
	toks := allTokens("SELECT 1 -- trailing comment\nFROM t")
	var types []Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	require.Equal(t, []Type{SELECT, INT, FROM, IDENT, EOF}, types)
}

func TestNumberLiterals(t *testing.T) {
	toks := allTokens("1 1.5 .5 1e10")
	require.Equal(t, INT, toks[0].Type)
	require.Equal(t, FLOAT, toks[1].Type)
	require.Equal(t, FLOAT, toks[2].Type)
	require.Equal(t, FLOAT, toks[3].Type)
}

func TestOperatorsAndDelimiters(t *testing.T) {
	toks := allTokens("<> <= >= = < > , ; ( ) . + - * /")
	var types []Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	require.Equal(t, []Type{
		NEQ, LTE, GTE, EQ, LT, GT, COMMA, SEMICOLON, LPAREN, RPAREN, DOT,
		PLUS, MINUS, ASTERISK, SLASH, EOF,
	}, types)
}

func TestQualifiedIdentifierTokens(t *testing.T) {
	toks := allTokens("t.a")
	require.Equal(t, []Type{IDENT, DOT, IDENT, EOF}, []Type{toks[0].Type, toks[1].Type, toks[2].Type, toks[3].Type})
}
