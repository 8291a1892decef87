package ast

// Visitor is called for each node during Inspect.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Inspect traverses the tree depth-first in source order.
func Inspect(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Inspect(s, v)
		}

	case *Block:
		for _, s := range n.Statements {
			Inspect(s, v)
		}

	case *LetStmt:
		Inspect(n.Name, v)
		inspectExpr(n.Value, v)

	case *ReturnStmt:
		inspectExpr(n.Value, v)

	case *ExprStmt:
		inspectExpr(n.Value, v)

	case *PrefixExpr:
		inspectExpr(n.Right, v)

	case *InfixExpr:
		inspectExpr(n.Left, v)
		inspectExpr(n.Right, v)

	case *IfExpr:
		inspectExpr(n.Condition, v)
		Inspect(n.Consequence, v)
		if n.Alternative != nil {
			Inspect(n.Alternative, v)
		}

	case *FunctionLiteral:
		for _, p := range n.Parameters {
			Inspect(p, v)
		}
		Inspect(n.Body, v)

	case *CallExpr:
		inspectExpr(n.Function, v)
		for _, a := range n.Arguments {
			inspectExpr(a, v)
		}

	case *Ident, *IntegerLiteral, *BooleanLiteral:
		// leaves
	}
}

// inspectExpr skips absent expressions on hand-built trees.
func inspectExpr(e Expression, v Visitor) {
	if e != nil {
		Inspect(e, v)
	}
}
