package grammar

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"mnlang/internal/ast"
	mnlexer "mnlang/internal/lexer"
	"mnlang/token"
)

// ToAST lowers a grammar tree into the same AST the Pratt parser builds.
func ToAST(program *Program) (*ast.Program, error) {
	c := &converter{}
	out := &ast.Program{}
	for _, s := range program.Statements {
		out.Statements = append(out.Statements, c.statement(s))
	}
	if c.err != nil {
		return nil, c.err
	}
	return out, nil
}

type converter struct {
	err error
}

func (c *converter) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func makeToken(t token.Type, literal string, pos lexer.Position) token.Token {
	return token.Token{
		Type:    t,
		Literal: literal,
		Pos:     token.Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column},
	}
}

// operatorToken classifies an operator lexeme with the real scanner.
func operatorToken(op string, pos lexer.Position) token.Token {
	return makeToken(mnlexer.New(op).NextToken().Type, op, pos)
}

func (c *converter) statement(s *Statement) ast.Statement {
	switch {
	case s.Let != nil:
		return &ast.LetStmt{
			Token: makeToken(token.LET, "let", s.Let.Pos),
			Name:  c.ident(s.Let.Name.Value, s.Let.Name.Pos),
			Value: c.expr(s.Let.Value),
		}
	case s.Return != nil:
		return &ast.ReturnStmt{
			Token: makeToken(token.RETURN, "return", s.Return.Pos),
			Value: c.expr(s.Return.Value),
		}
	default:
		value := c.expr(s.Expr.Value)
		return &ast.ExprStmt{Token: firstToken(value), Value: value}
	}
}

func (c *converter) block(b *Block) *ast.Block {
	out := &ast.Block{Token: makeToken(token.LBRACE, "{", b.Pos)}
	for _, s := range b.Statements {
		out.Statements = append(out.Statements, c.statement(s))
	}
	return out
}

func (c *converter) infix(left ast.Expression, op string, pos lexer.Position, right ast.Expression) ast.Expression {
	return &ast.InfixExpr{
		Token:    operatorToken(op, pos),
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

func (c *converter) expr(e *Expr) ast.Expression {
	left := c.comparison(e.Left)
	for _, op := range e.Right {
		left = c.infix(left, op.Operator, op.Pos, c.comparison(op.Operand))
	}
	return left
}

func (c *converter) comparison(e *Comparison) ast.Expression {
	left := c.sum(e.Left)
	for _, op := range e.Right {
		left = c.infix(left, op.Operator, op.Pos, c.sum(op.Operand))
	}
	return left
}

func (c *converter) sum(e *Sum) ast.Expression {
	left := c.product(e.Left)
	for _, op := range e.Right {
		left = c.infix(left, op.Operator, op.Pos, c.product(op.Operand))
	}
	return left
}

func (c *converter) product(e *Product) ast.Expression {
	left := c.unary(e.Left)
	for _, op := range e.Right {
		left = c.infix(left, op.Operator, op.Pos, c.unary(op.Operand))
	}
	return left
}

func (c *converter) unary(u *Unary) ast.Expression {
	if u.Prefix != nil {
		return &ast.PrefixExpr{
			Token:    operatorToken(u.Prefix.Operator, u.Prefix.Pos),
			Operator: u.Prefix.Operator,
			Right:    c.unary(u.Prefix.Operand),
		}
	}

	fn := c.primary(u.Call.Callee)
	for _, args := range u.Call.Args {
		call := &ast.CallExpr{
			Token:    makeToken(token.LPAREN, "(", args.Pos),
			Function: fn,
		}
		for _, arg := range args.List {
			call.Arguments = append(call.Arguments, c.expr(arg))
		}
		fn = call
	}
	return fn
}

func (c *converter) primary(p *Primary) ast.Expression {
	switch {
	case p.If != nil:
		out := &ast.IfExpr{
			Token:       makeToken(token.IF, "if", p.If.Pos),
			Condition:   c.expr(p.If.Condition),
			Consequence: c.block(p.If.Consequence),
		}
		if p.If.Alternative != nil {
			out.Alternative = c.block(p.If.Alternative)
		}
		return out

	case p.Function != nil:
		out := &ast.FunctionLiteral{
			Token: makeToken(token.FUNCTION, "fn", p.Function.Pos),
			Body:  c.block(p.Function.Body),
		}
		for _, param := range p.Function.Params {
			out.Parameters = append(out.Parameters, c.ident(param.Value, param.Pos))
		}
		return out

	case p.Bool != nil:
		return &ast.BooleanLiteral{
			Token: makeToken(token.LookupIdent(*p.Bool), *p.Bool, p.Pos),
			Value: *p.Bool == "true",
		}

	case p.Int != nil:
		value, err := strconv.ParseInt(*p.Int, 10, 64)
		if err != nil {
			c.fail(participle.Errorf(p.Pos, "integer literal %s overflows a 64-bit integer", *p.Int))
		}
		return &ast.IntegerLiteral{Token: makeToken(token.INT, *p.Int, p.Pos), Value: value}

	case p.Ident != nil:
		return c.ident(*p.Ident, p.Pos)

	default:
		return c.expr(p.Group)
	}
}

func (c *converter) ident(name string, pos lexer.Position) *ast.Ident {
	return &ast.Ident{Token: makeToken(token.IDENT, name, pos), Name: name}
}

func firstToken(e ast.Expression) token.Token {
	switch e := e.(type) {
	case *ast.InfixExpr:
		return firstToken(e.Left)
	case *ast.CallExpr:
		return firstToken(e.Function)
	case *ast.Ident:
		return e.Token
	case *ast.IntegerLiteral:
		return e.Token
	case *ast.BooleanLiteral:
		return e.Token
	case *ast.PrefixExpr:
		return e.Token
	case *ast.IfExpr:
		return e.Token
	case *ast.FunctionLiteral:
		return e.Token
	}
	return token.Token{}
}
