// Package token SPDX-License-Identifier: Apache-2.0
package token

import "fmt"

type Type int

const (
	ILLEGAL Type = iota
	EOF

	// Identifiers + literals
	IDENT // add, foobar, x, y ...
	INT   // 1234567890

	// Operators
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH

	LT
	GT

	EQ
	NOT_EQ

	// Delimiters
	COMMA
	SEMICOLON

	LPAREN
	RPAREN
	LBRACE
	RBRACE

	// Keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

var typeNames = [...]string{
	ILLEGAL:   "Illegal",
	EOF:       "Eof",
	IDENT:     "Ident",
	INT:       "Int",
	ASSIGN:    "Assign",
	PLUS:      "Plus",
	MINUS:     "Minus",
	BANG:      "Bang",
	ASTERISK:  "Asterisk",
	SLASH:     "Slash",
	LT:        "Lt",
	GT:        "Gt",
	EQ:        "Eq",
	NOT_EQ:    "NotEq",
	COMMA:     "Comma",
	SEMICOLON: "Semicolon",
	LPAREN:    "Lparen",
	RPAREN:    "Rparen",
	LBRACE:    "Lbrace",
	RBRACE:    "Rbrace",
	FUNCTION:  "Function",
	LET:       "Let",
	TRUE:      "True",
	FALSE:     "False",
	IF:        "If",
	ELSE:      "Else",
	RETURN:    "Return",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Types lists every token type in declaration order.
func Types() []Type {
	types := make([]Type, len(typeNames))
	for i := range typeNames {
		types[i] = Type(i)
	}
	return types
}

// EOFLiteral is the literal carried by every EOF token.
const EOFLiteral = "\x00"

// Position locates a token in the source. Line and Column are 1-based,
// Offset is the 0-based byte index.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

func (t Token) String() string {
	switch t.Type {
	case IDENT, INT, ILLEGAL:
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	default:
		return t.Type.String()
	}
}

var keywords = map[string]Type{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words in a stable order.
func Keywords() []string {
	return []string{"fn", "let", "if", "else", "return", "true", "false"}
}

func (t Type) IsKeyword() bool {
	return t >= FUNCTION && t <= RETURN
}

func (t Type) IsOperator() bool {
	return t >= ASSIGN && t <= NOT_EQ
}
