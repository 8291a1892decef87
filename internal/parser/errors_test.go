package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mnlang/internal/errors"
	"mnlang/token"
)

func TestLetWithoutNameRecovers(t *testing.T) {
	program, errs := parseWithErrors("let = 5; let y = 2;")

	require.Len(t, errs, 1)
	err := errs[0]
	assert.Equal(t, errors.ErrorUnexpectedToken, err.Code)
	assert.Equal(t, "Ident", err.Expected)
	assert.Equal(t, token.ASSIGN, err.Found.Type)
	assert.Equal(t, "expected Ident, found Assign", err.Message)
	assert.Equal(t, token.Position{Offset: 4, Line: 1, Column: 5}, err.Position)

	require.Len(t, program.Statements, 1)
	assert.Equal(t, "let y = 2;", program.String())
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input    string
		code     string
		message  string
		expected string
	}{
		{"let x 5;", errors.ErrorUnexpectedToken, `expected Assign, found Int "5"`, "Assign"},
		{"let x = ;", errors.ErrorMissingExpression, "expected expression, found Semicolon", "expression"},
		{"let fn = 1;", errors.ErrorUnexpectedToken, "expected Ident, found Function", "Ident"},
		{"let a = 92233720368547758070;", errors.ErrorIntegerOverflow, "integer literal 92233720368547758070 overflows a 64-bit integer", "integer"},
		{"let a = @;", errors.ErrorIllegalCharacter, `illegal character "@"`, "expression"},
		{"if (x) { x", errors.ErrorUnterminatedBlock, "expected Rbrace, found Eof", "Rbrace"},
		{"if x { x }", errors.ErrorUnexpectedToken, `expected Lparen, found Ident "x"`, "Lparen"},
		{"(1 + 2", errors.ErrorUnexpectedToken, "expected Rparen, found Eof", "Rparen"},
		{"add(1, 2", errors.ErrorUnexpectedToken, "expected Rparen, found Eof", "Rparen"},
		{"fn(1) {}", errors.ErrorUnexpectedToken, `expected Ident, found Int "1"`, "Ident"},
		{"fn(x, ) {}", errors.ErrorUnexpectedToken, "expected Ident, found Rparen", "Ident"},
		{"return;", errors.ErrorMissingExpression, "expected expression, found Semicolon", "expression"},
		{"}", errors.ErrorMissingExpression, "expected expression, found Rbrace", "expression"},
		{"if (x) { 1 } else 2", errors.ErrorUnexpectedToken, `expected Lbrace, found Int "2"`, "Lbrace"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, errs := parseWithErrors(tt.input)
			require.Len(t, errs, 1, "errors: %v", errs)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, tt.message, errs[0].Message)
			assert.Equal(t, tt.expected, errs[0].Expected)
			assert.Equal(t, tt.code, errs[0].Detail.Code)
		})
	}
}

func TestMultipleErrorsInOnePass(t *testing.T) {
	source := `let = 1;
let y = ;
let z = 3;
let 4;
z;`
	program, errs := parseWithErrors(source)

	require.Len(t, errs, 3)
	assert.Equal(t, 1, errs[0].Position.Line)
	assert.Equal(t, 2, errs[1].Position.Line)
	assert.Equal(t, 4, errs[2].Position.Line)

	require.Len(t, program.Statements, 2)
	assert.Equal(t, "let z = 3;z", program.String())
}

func TestErrorInsideBlockRecoversAtBrace(t *testing.T) {
	program, errs := parseWithErrors("if (a) { let = 1; b } else { c }; d;")

	require.Len(t, errs, 1)
	require.Len(t, program.Statements, 2)

	ifExpr := program.Statements[0].String()
	assert.Equal(t, "if (a) { b; } else { c; }", ifExpr)
	assert.Equal(t, "d", program.Statements[1].String())
}

func TestStrayClosingBraceIsSkipped(t *testing.T) {
	program, errs := parseWithErrors("} let a = 1;")

	require.Len(t, errs, 1)
	require.Len(t, program.Statements, 1)
	assert.Equal(t, "let a = 1;", program.String())
}

func TestErrorListFormatting(t *testing.T) {
	var empty ErrorList
	assert.NoError(t, empty.Err())
	assert.Equal(t, "no errors", empty.Error())

	_, errs := parseWithErrors("let = 1; let = 2;")
	require.Len(t, errs, 2)
	assert.Equal(t, "1:5: expected Ident, found Assign (and 1 more errors)", errs.Error())

	diags := errs.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, errors.Error, diags[0].Level)
	assert.Equal(t, token.Position{Offset: 13, Line: 1, Column: 14}, diags[1].Position)
}

func TestNestedBlockFailureKeepsEnclosingBlock(t *testing.T) {
	program, errs := parseWithErrors("fn() { (if (x) { 1 } 2); 3 }; let z = 4;")

	require.Len(t, errs, 1, "errors: %v", errs)
	assert.Equal(t, `expected Rparen, found Int "2"`, errs[0].Message)
	assert.Equal(t, "fn() { 3; };let z = 4;", program.String())
}

func TestFailureAfterClosedBlockAtTopLevel(t *testing.T) {
	program, errs := parseWithErrors("(if (x) { 1 } 2); let y = 1;")

	require.Len(t, errs, 1, "errors: %v", errs)
	assert.Equal(t, "let y = 1;", program.String())
}

func TestUnterminatedNestedBlocksReportOnce(t *testing.T) {
	_, errs := parseWithErrors("if (x) { if (y) { 1 ")

	require.Len(t, errs, 1, "errors: %v", errs)
	assert.Equal(t, errors.ErrorUnterminatedBlock, errs[0].Code)
	assert.Equal(t, token.EOF, errs[0].Found.Type)
}

func TestStrayBraceSwallowsFollowingSemicolon(t *testing.T) {
	program, errs := parseWithErrors("}}}; 1")

	require.Len(t, errs, 3, "errors: %v", errs)
	for _, err := range errs {
		assert.Equal(t, "expected expression, found Rbrace", err.Message)
	}
	assert.Equal(t, "1", program.String())
}
