package ast

import "mnlang/token"

// Program is the root of every parse; statements are kept in source order.
type Program struct {
	Statements []Statement
}

// Block represents a brace-delimited statement sequence
// Example: "{ x + y; }" in "fn(x, y) { x + y; }"
type Block struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

// LetStmt binds a name to the value of an expression
// Example: "let five = 5;"
type LetStmt struct {
	Token token.Token
	Name  *Ident
	Value Expression
}

// ReturnStmt represents "return <value>;"
type ReturnStmt struct {
	Token token.Token
	Value Expression
}

// ExprStmt wraps an expression used in statement position
// Example: "add(1, 2);"
type ExprStmt struct {
	Token token.Token // first token of the expression
	Value Expression
}

// Ident represents variable and parameter names
// Example: "x", "add", "foo_bar"
type Ident struct {
	Token token.Token
	Name  string
}

// IntegerLiteral keeps the scanned digits in Token.Literal and the converted value in Value
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

// PrefixExpr represents unary operators
// Example: "-x", "!ok"
type PrefixExpr struct {
	Token    token.Token
	Operator string
	Right    Expression
}

// InfixExpr represents binary operators
// Example: "a + b", "x == y"
type InfixExpr struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

// IfExpr represents a conditional with an optional else block
// Example: "if (x < y) { x } else { y }"
type IfExpr struct {
	Token       token.Token
	Condition   Expression
	Consequence *Block
	Alternative *Block // nil when there is no else branch
}

// FunctionLiteral represents an anonymous function
// Example: "fn(x, y) { x + y; }"
type FunctionLiteral struct {
	Token      token.Token
	Parameters []*Ident
	Body       *Block
}

// CallExpr represents a call of any callee expression
// Example: "add(1, 2 * 3)", "fn(x) { x; }(5)"
type CallExpr struct {
	Token     token.Token // the '(' token
	Function  Expression
	Arguments []Expression
}
