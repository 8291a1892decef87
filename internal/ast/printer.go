package ast

import (
	"strings"
)

// String renders the statements back to back. An expression statement that is
// followed by another statement gets a ';' so the two do not run together.
func (p *Program) String() string {
	var b strings.Builder
	for i, s := range p.Statements {
		b.WriteString(s.String())
		if _, ok := s.(*ExprStmt); ok && i < len(p.Statements)-1 {
			b.WriteString(";")
		}
	}
	return b.String()
}

// String renders the block so that it re-parses to the same statements:
// expression statements get an explicit ';' terminator.
func (b *Block) String() string {
	var out strings.Builder
	out.WriteString("{ ")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		if _, ok := s.(*ExprStmt); ok {
			out.WriteString(";")
		}
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

func (l *LetStmt) String() string {
	var b strings.Builder
	b.WriteString("let ")
	b.WriteString(l.Name.String())
	b.WriteString(" = ")
	if l.Value != nil {
		b.WriteString(l.Value.String())
	}
	b.WriteString(";")
	return b.String()
}

func (r *ReturnStmt) String() string {
	var b strings.Builder
	b.WriteString("return ")
	if r.Value != nil {
		b.WriteString(r.Value.String())
	}
	b.WriteString(";")
	return b.String()
}

func (e *ExprStmt) String() string {
	if e.Value != nil {
		return e.Value.String()
	}
	return ""
}

func (i *Ident) String() string {
	return i.Name
}

func (i *IntegerLiteral) String() string {
	return i.Token.Literal
}

func (b *BooleanLiteral) String() string {
	return b.Token.Literal
}

func (p *PrefixExpr) String() string {
	return "(" + p.Operator + p.Right.String() + ")"
}

func (i *InfixExpr) String() string {
	return "(" + i.Left.String() + " " + i.Operator + " " + i.Right.String() + ")"
}

func (i *IfExpr) String() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(i.Condition.String())
	b.WriteString(") ")
	b.WriteString(i.Consequence.String())
	if i.Alternative != nil {
		b.WriteString(" else ")
		b.WriteString(i.Alternative.String())
	}
	return b.String()
}

func (f *FunctionLiteral) String() string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	return "fn(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

func (c *CallExpr) String() string {
	args := make([]string, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		args = append(args, a.String())
	}
	return c.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
