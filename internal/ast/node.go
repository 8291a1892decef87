package ast

import "mnlang/token"

type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
	NodeType() NodeType
}

// Statement is implemented by *LetStmt, *ReturnStmt and *ExprStmt only.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by the eight expression node types below.
type Expression interface {
	Node
	expressionNode()
}

func (*LetStmt) statementNode()    {}
func (*ReturnStmt) statementNode() {}
func (*ExprStmt) statementNode()   {}

func (*Ident) expressionNode()           {}
func (*IntegerLiteral) expressionNode()  {}
func (*BooleanLiteral) expressionNode()  {}
func (*PrefixExpr) expressionNode()      {}
func (*InfixExpr) expressionNode()       {}
func (*IfExpr) expressionNode()          {}
func (*FunctionLiteral) expressionNode() {}
func (*CallExpr) expressionNode()        {}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (b *Block) TokenLiteral() string           { return b.Token.Literal }
func (l *LetStmt) TokenLiteral() string         { return l.Token.Literal }
func (r *ReturnStmt) TokenLiteral() string      { return r.Token.Literal }
func (e *ExprStmt) TokenLiteral() string        { return e.Token.Literal }
func (i *Ident) TokenLiteral() string           { return i.Token.Literal }
func (i *IntegerLiteral) TokenLiteral() string  { return i.Token.Literal }
func (b *BooleanLiteral) TokenLiteral() string  { return b.Token.Literal }
func (p *PrefixExpr) TokenLiteral() string      { return p.Token.Literal }
func (i *InfixExpr) TokenLiteral() string       { return i.Token.Literal }
func (i *IfExpr) TokenLiteral() string          { return i.Token.Literal }
func (f *FunctionLiteral) TokenLiteral() string { return f.Token.Literal }
func (c *CallExpr) TokenLiteral() string        { return c.Token.Literal }

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (b *Block) Pos() token.Position           { return b.Token.Pos }
func (l *LetStmt) Pos() token.Position         { return l.Token.Pos }
func (r *ReturnStmt) Pos() token.Position      { return r.Token.Pos }
func (e *ExprStmt) Pos() token.Position        { return e.Token.Pos }
func (i *Ident) Pos() token.Position           { return i.Token.Pos }
func (i *IntegerLiteral) Pos() token.Position  { return i.Token.Pos }
func (b *BooleanLiteral) Pos() token.Position  { return b.Token.Pos }
func (p *PrefixExpr) Pos() token.Position      { return p.Token.Pos }
func (i *InfixExpr) Pos() token.Position       { return i.Left.Pos() }
func (i *IfExpr) Pos() token.Position          { return i.Token.Pos }
func (f *FunctionLiteral) Pos() token.Position { return f.Token.Pos }
func (c *CallExpr) Pos() token.Position        { return c.Function.Pos() }

func (*Program) NodeType() NodeType         { return PROGRAM }
func (*Block) NodeType() NodeType           { return BLOCK }
func (*LetStmt) NodeType() NodeType         { return LET_STMT }
func (*ReturnStmt) NodeType() NodeType      { return RETURN_STMT }
func (*ExprStmt) NodeType() NodeType        { return EXPR_STMT }
func (*Ident) NodeType() NodeType           { return IDENT }
func (*IntegerLiteral) NodeType() NodeType  { return INTEGER_LITERAL }
func (*BooleanLiteral) NodeType() NodeType  { return BOOLEAN_LITERAL }
func (*PrefixExpr) NodeType() NodeType      { return PREFIX_EXPR }
func (*InfixExpr) NodeType() NodeType       { return INFIX_EXPR }
func (*IfExpr) NodeType() NodeType          { return IF_EXPR }
func (*FunctionLiteral) NodeType() NodeType { return FUNCTION_LITERAL }
func (*CallExpr) NodeType() NodeType        { return CALL_EXPR }
