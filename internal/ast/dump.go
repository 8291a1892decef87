package ast

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("  ", level)
}

// Dump renders the tree one node per line, children indented under parents.
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, node Node, level int) {
	b.WriteString(indent(level))
	b.WriteString(node.NodeType().String())
	if label := dumpLabel(node); label != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
	b.WriteString("\n")

	children := directChildren(node)
	for _, child := range children {
		dump(b, child, level+1)
	}
}

func dumpLabel(node Node) string {
	switch n := node.(type) {
	case *Ident:
		return n.Name
	case *IntegerLiteral:
		return fmt.Sprintf("%d", n.Value)
	case *BooleanLiteral:
		return fmt.Sprintf("%t", n.Value)
	case *PrefixExpr:
		return n.Operator
	case *InfixExpr:
		return n.Operator
	case *FunctionLiteral:
		return fmt.Sprintf("params=%d", len(n.Parameters))
	case *CallExpr:
		return fmt.Sprintf("args=%d", len(n.Arguments))
	case *IfExpr:
		if n.Alternative != nil {
			return "with else"
		}
	}
	return ""
}

func directChildren(node Node) []Node {
	var children []Node
	Inspect(node, func(n Node) bool {
		if n == node {
			return true
		}
		children = append(children, n)
		return false
	})
	return children
}
