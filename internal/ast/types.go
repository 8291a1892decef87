package ast

import "fmt"

type NodeType int

const (
	ILLEGAL NodeType = iota

	// High-level constructs
	PROGRAM
	BLOCK

	// Statements
	LET_STMT
	RETURN_STMT
	EXPR_STMT

	// Expressions
	IDENT
	INTEGER_LITERAL
	BOOLEAN_LITERAL
	PREFIX_EXPR
	INFIX_EXPR
	IF_EXPR
	FUNCTION_LITERAL
	CALL_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "Illegal",
	PROGRAM:          "Program",
	BLOCK:            "Block",
	LET_STMT:         "LetStmt",
	RETURN_STMT:      "ReturnStmt",
	EXPR_STMT:        "ExprStmt",
	IDENT:            "Ident",
	INTEGER_LITERAL:  "IntegerLiteral",
	BOOLEAN_LITERAL:  "BooleanLiteral",
	PREFIX_EXPR:      "PrefixExpr",
	INFIX_EXPR:       "InfixExpr",
	IF_EXPR:          "IfExpr",
	FUNCTION_LITERAL: "FunctionLiteral",
	CALL_EXPR:        "CallExpr",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}
