package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mnlang/internal/ast"
	"mnlang/internal/lexer"
	"mnlang/token"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()

	p := New(lexer.New(source))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors for %q", source)
	require.NotNil(t, program)
	return program
}

func parseWithErrors(source string) (*ast.Program, ErrorList) {
	p := New(lexer.New(source))
	program := p.ParseProgram()
	return program, p.Errors()
}

func TestParseLetStatement(t *testing.T) {
	program := parseProgram(t, "let five = 5;")
	require.Len(t, program.Statements, 1)

	let, ok := program.Statements[0].(*ast.LetStmt)
	require.True(t, ok, "expected *ast.LetStmt, got %T", program.Statements[0])
	assert.Equal(t, "five", let.Name.Name)
	assert.Equal(t, "let", let.TokenLiteral())

	value, ok := let.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), value.Value)

	assert.Equal(t, "let five = 5;", program.String())
}

func TestParseLetStatements(t *testing.T) {
	tests := []struct {
		input string
		name  string
		value string
	}{
		{"let x = 5;", "x", "5"},
		{"let y = true;", "y", "true"},
		{"let foobar = y;", "foobar", "y"},
		{"let sum = a + b", "sum", "(a + b)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			require.Len(t, program.Statements, 1)

			let := program.Statements[0].(*ast.LetStmt)
			assert.Equal(t, tt.name, let.Name.Name)
			assert.Equal(t, tt.value, let.Value.String())
		})
	}
}

func TestParseReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return x; return add(1, 2);")
	require.Len(t, program.Statements, 3)

	expected := []string{"5", "x", "add(1, 2)"}
	for i, stmt := range program.Statements {
		ret, ok := stmt.(*ast.ReturnStmt)
		require.True(t, ok, "statement %d is %T", i, stmt)
		assert.Equal(t, "return", ret.TokenLiteral())
		assert.Equal(t, expected[i], ret.Value.String())
	}
}

func TestParseIdentifierAndLiterals(t *testing.T) {
	program := parseProgram(t, "foobar; 5; true; false;")
	require.Len(t, program.Statements, 4)

	ident := program.Statements[0].(*ast.ExprStmt).Value.(*ast.Ident)
	assert.Equal(t, "foobar", ident.Name)

	integer := program.Statements[1].(*ast.ExprStmt).Value.(*ast.IntegerLiteral)
	assert.Equal(t, int64(5), integer.Value)

	assert.True(t, program.Statements[2].(*ast.ExprStmt).Value.(*ast.BooleanLiteral).Value)
	assert.False(t, program.Statements[3].(*ast.ExprStmt).Value.(*ast.BooleanLiteral).Value)
}

func TestParseIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	require.Len(t, program.Statements, 1)

	ifExpr, ok := program.Statements[0].(*ast.ExprStmt).Value.(*ast.IfExpr)
	require.True(t, ok)
	assert.Equal(t, "(x < y)", ifExpr.Condition.String())
	require.Len(t, ifExpr.Consequence.Statements, 1)
	assert.Equal(t, "x", ifExpr.Consequence.Statements[0].String())
	assert.Nil(t, ifExpr.Alternative)
}

func TestParseIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	require.Len(t, program.Statements, 1)

	ifExpr := program.Statements[0].(*ast.ExprStmt).Value.(*ast.IfExpr)
	assert.Equal(t, "(x < y)", ifExpr.Condition.String())

	require.Len(t, ifExpr.Consequence.Statements, 1)
	cons, ok := ifExpr.Consequence.Statements[0].(*ast.ExprStmt)
	require.True(t, ok)
	assert.Equal(t, "x", cons.Value.(*ast.Ident).Name)

	require.NotNil(t, ifExpr.Alternative)
	require.Len(t, ifExpr.Alternative.Statements, 1)
	alt, ok := ifExpr.Alternative.Statements[0].(*ast.ExprStmt)
	require.True(t, ok)
	assert.Equal(t, "y", alt.Value.(*ast.Ident).Name)

	assert.Equal(t, "if ((x < y)) { x; } else { y; }", ifExpr.String())
}

func TestParseFunctionLiteral(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	require.Len(t, program.Statements, 1)

	fn, ok := program.Statements[0].(*ast.ExprStmt).Value.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Name)
	assert.Equal(t, "y", fn.Parameters[1].Name)
	require.Len(t, fn.Body.Statements, 1)
	assert.Equal(t, "(x + y)", fn.Body.Statements[0].String())
}

func TestParseFunctionParameters(t *testing.T) {
	tests := []struct {
		input  string
		params []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			fn := program.Statements[0].(*ast.ExprStmt).Value.(*ast.FunctionLiteral)

			names := []string{}
			for _, p := range fn.Parameters {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.params, names)
			assert.Empty(t, fn.Body.Statements)
		})
	}
}

func TestParseCallExpression(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	require.Len(t, program.Statements, 1)

	call, ok := program.Statements[0].(*ast.ExprStmt).Value.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "add", call.Function.String())
	require.Len(t, call.Arguments, 3)
	assert.Equal(t, "1", call.Arguments[0].String())
	assert.Equal(t, "(2 * 3)", call.Arguments[1].String())
	assert.Equal(t, "(4 + 5)", call.Arguments[2].String())
	assert.Equal(t, "(", call.TokenLiteral())
}

func TestParseCallOnFunctionLiteral(t *testing.T) {
	program := parseProgram(t, "fn(x) { x; }(5)")

	call := program.Statements[0].(*ast.ExprStmt).Value.(*ast.CallExpr)
	_, ok := call.Function.(*ast.FunctionLiteral)
	assert.True(t, ok)
	assert.Equal(t, "fn(x) { x; }(5)", call.String())
}

func TestParseNestedBlocks(t *testing.T) {
	source := `
let max = fn(a, b) {
  if (a > b) { return a; } else { return b; }
};
max(1, 2);
`
	program := parseProgram(t, source)
	require.Len(t, program.Statements, 2)

	let := program.Statements[0].(*ast.LetStmt)
	fn := let.Value.(*ast.FunctionLiteral)
	require.Len(t, fn.Body.Statements, 1)

	ifExpr := fn.Body.Statements[0].(*ast.ExprStmt).Value.(*ast.IfExpr)
	_, ok := ifExpr.Consequence.Statements[0].(*ast.ReturnStmt)
	assert.True(t, ok)
	_, ok = ifExpr.Alternative.Statements[0].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestParseEmptyInput(t *testing.T) {
	for _, source := range []string{"", "   \n\t ", ";"} {
		p := New(lexer.New(source))
		program := p.ParseProgram()
		if source == ";" {
			// A lone ';' cannot start an expression
			assert.Len(t, p.Errors(), 1)
			continue
		}
		assert.Empty(t, p.Errors())
		assert.Empty(t, program.Statements)
	}
}

func TestNodePositions(t *testing.T) {
	program := parseProgram(t, "let a = 1;\n  b + c;")

	assert.Equal(t, token.Position{Offset: 0, Line: 1, Column: 1}, program.Statements[0].Pos())

	infix := program.Statements[1].(*ast.ExprStmt).Value.(*ast.InfixExpr)
	assert.Equal(t, 2, infix.Pos().Line)
	assert.Equal(t, 3, infix.Pos().Column)
	assert.Equal(t, 5, infix.Token.Pos.Column)
}

func TestParseSourceKeepsGoodStatements(t *testing.T) {
	result := ParseSource("test.mn", "let a = 1; let = 2; let c = 3;")

	assert.True(t, result.HasErrors())
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, "test.mn", result.Filename)
	require.Len(t, result.Program.Statements, 2)
	assert.Equal(t, "let a = 1;let c = 3;", result.Program.String())
}

func TestParse(t *testing.T) {
	program, err := Parse("let five = 5;")
	require.NoError(t, err)
	assert.Equal(t, "let five = 5;", program.String())

	program, err = Parse("let = 5;")
	assert.Nil(t, program)
	require.Error(t, err)

	var list ErrorList
	require.ErrorAs(t, err, &list)
	assert.Len(t, list, 1)
	assert.Equal(t, "1:5: expected Ident, found Assign", err.Error())
}
