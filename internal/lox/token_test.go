package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	testCases := []struct {
		tok  *Token
		want string
	}{
		{tok(LEFT_PAREN, "(", 1), "( ( nil"},
		{tok(IDENTIFIER, "abc", 1), "IDENTIFIER abc nil"},
		{num("1.5", 1.5), "NUMBER 1.5 1.5"},
		{NewToken(STRING, "\"hi\"", StringLiteral("hi"), 1), "STRING \"hi\" hi"},
		{tok(WHILE, "while", 1), "WHILE while nil"},
		{tokEOF(1), "EOF  nil"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, tc.tok.String())
	}
}

func TestNewTokenDefaultsToNil(t *testing.T) {
	assert.Equal(t, Nil, NewToken(DOT, ".", nil, 1).Literal)
}

func TestKeywordTable(t *testing.T) {
	assert := assert.New(t)
	assert.Len(KeywordTokens, 16)
	for lexeme, typ := range KeywordTokens {
		toks, err := Scan(lexeme)
		assert.NoError(err)
		assert.Equal(typ, toks[0].Typ, lexeme)
	}
}

func TestTokenTypeString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("!=", BANG_EQUAL.String())
	assert.Equal("NUMBER", NUMBER.String())
	assert.Equal("RETURN", RETURN.String())
	assert.Equal("EOF", EOF.String())
	assert.Equal("TokenType(999)", TokenType(999).String())
}

func TestLiteralString(t *testing.T) {
	testCases := []struct {
		lit  Literal
		want string
	}{
		{Nil, "nil"},
		{BoolLiteral(true), "true"},
		{BoolLiteral(false), "false"},
		{NumberLiteral(123), "123"},
		{NumberLiteral(45.67), "45.67"},
		{NumberLiteral(-0.25), "-0.25"},
		{NumberLiteral(1e21), "1000000000000000000000"},
		{StringLiteral(""), ""},
		{StringLiteral("a b"), "a b"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, tc.lit.String())
	}
}
