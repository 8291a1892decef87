package ast

// Equal reports whether two trees have the same shape, names, operators and
// literal values. Token positions and the tokens recorded on statements are
// ignored, so trees built from differently formatted sources compare equal.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.NodeType() != b.NodeType() {
		return false
	}

	switch x := a.(type) {
	case *Program:
		return statementsEqual(x.Statements, b.(*Program).Statements)

	case *Block:
		y := b.(*Block)
		if x == nil || y == nil {
			return x == y
		}
		return statementsEqual(x.Statements, y.Statements)

	case *LetStmt:
		y := b.(*LetStmt)
		return Equal(x.Name, y.Name) && exprEqual(x.Value, y.Value)

	case *ReturnStmt:
		return exprEqual(x.Value, b.(*ReturnStmt).Value)

	case *ExprStmt:
		return exprEqual(x.Value, b.(*ExprStmt).Value)

	case *Ident:
		return x.Name == b.(*Ident).Name

	case *IntegerLiteral:
		return x.Value == b.(*IntegerLiteral).Value

	case *BooleanLiteral:
		return x.Value == b.(*BooleanLiteral).Value

	case *PrefixExpr:
		y := b.(*PrefixExpr)
		return x.Operator == y.Operator && exprEqual(x.Right, y.Right)

	case *InfixExpr:
		y := b.(*InfixExpr)
		return x.Operator == y.Operator && exprEqual(x.Left, y.Left) && exprEqual(x.Right, y.Right)

	case *IfExpr:
		y := b.(*IfExpr)
		if !exprEqual(x.Condition, y.Condition) || !Equal(x.Consequence, y.Consequence) {
			return false
		}
		if x.Alternative == nil || y.Alternative == nil {
			return x.Alternative == nil && y.Alternative == nil
		}
		return Equal(x.Alternative, y.Alternative)

	case *FunctionLiteral:
		y := b.(*FunctionLiteral)
		if len(x.Parameters) != len(y.Parameters) {
			return false
		}
		for i := range x.Parameters {
			if x.Parameters[i].Name != y.Parameters[i].Name {
				return false
			}
		}
		return Equal(x.Body, y.Body)

	case *CallExpr:
		y := b.(*CallExpr)
		if !exprEqual(x.Function, y.Function) || len(x.Arguments) != len(y.Arguments) {
			return false
		}
		for i := range x.Arguments {
			if !exprEqual(x.Arguments[i], y.Arguments[i]) {
				return false
			}
		}
		return true
	}

	return false
}

func statementsEqual(a, b []Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func exprEqual(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}
