package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mnlang/internal/ast"
	"mnlang/internal/lexer"
)

func prepareParser(expr string) *Parser {
	return New(lexer.New(expr))
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4);((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"-a(b)", "(-a(b))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"f(1)(2)", "f(1)(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			assert.Equal(t, tt.expected, program.String())
		})
	}
}

func TestParsePrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
		right    string
	}{
		{"!5;", "!", "5"},
		{"-15;", "-", "15"},
		{"!true;", "!", "true"},
		{"--x;", "-", "(-x)"},
	}

	for _, tt := range tests {
		p := prepareParser(tt.input)
		expr := p.parsePrattExpr(LOWEST)
		require.Empty(t, p.Errors())

		prefix, ok := expr.(*ast.PrefixExpr)
		require.True(t, ok, "%q parsed to %T", tt.input, expr)
		assert.Equal(t, tt.operator, prefix.Operator)
		assert.Equal(t, tt.right, prefix.Right.String())
	}
}

func TestParseInfixExpressions(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", ">", "<", "==", "!="} {
		p := prepareParser("5 " + op + " 6")
		expr := p.parsePrattExpr(LOWEST)
		require.Empty(t, p.Errors())

		infix, ok := expr.(*ast.InfixExpr)
		require.True(t, ok)
		assert.Equal(t, op, infix.Operator)
		assert.Equal(t, int64(5), infix.Left.(*ast.IntegerLiteral).Value)
		assert.Equal(t, int64(6), infix.Right.(*ast.IntegerLiteral).Value)
	}
}

func TestParsePrattExprStopsAtMinPrecedence(t *testing.T) {
	p := prepareParser("1 + 2 * 3")
	expr := p.parsePrattExpr(SUM)

	assert.Equal(t, "1", expr.String())
	assert.Equal(t, "+", p.peekToken.Literal)
}

func TestIntegerLimits(t *testing.T) {
	program := parseProgram(t, "9223372036854775807")
	lit := program.Statements[0].(*ast.ExprStmt).Value.(*ast.IntegerLiteral)
	assert.Equal(t, int64(9223372036854775807), lit.Value)

	// Negation applies to the literal, which is already out of range
	_, errs := parseWithErrors("-9223372036854775808")
	require.Len(t, errs, 1)
	assert.Equal(t, "E0102", errs[0].Code)
}
