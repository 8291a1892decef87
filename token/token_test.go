package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeNames(t *testing.T) {
	for _, tt := range Types() {
		assert.NotEmpty(t, tt.String())
		assert.NotContains(t, tt.String(), "Type(")
	}

	assert.Equal(t, "Ident", IDENT.String())
	assert.Equal(t, "Assign", ASSIGN.String())
	assert.Equal(t, "NotEq", NOT_EQ.String())
	assert.Equal(t, "Eof", EOF.String())
	assert.Equal(t, "Type(99)", Type(99).String())
}

func TestLookupIdent(t *testing.T) {
	tests := map[string]Type{
		"fn":     FUNCTION,
		"let":    LET,
		"true":   TRUE,
		"false":  FALSE,
		"if":     IF,
		"else":   ELSE,
		"return": RETURN,
		"five":   IDENT,
		"lets":   IDENT,
		"_":      IDENT,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, LookupIdent(input), input)
	}

	for _, kw := range Keywords() {
		assert.True(t, LookupIdent(kw).IsKeyword(), kw)
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, EQ.IsOperator())
	assert.True(t, ASSIGN.IsOperator())
	assert.False(t, COMMA.IsOperator())
	assert.False(t, IDENT.IsKeyword())
	assert.True(t, RETURN.IsKeyword())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `Illegal "@"`, Token{Type: ILLEGAL, Literal: "@"}.String())
	assert.Equal(t, "Assign", Token{Type: ASSIGN, Literal: "="}.String())
	assert.Equal(t, "3:7", Position{Line: 3, Column: 7}.String())
}
