package grammar

import (
	"strings"
)

// The printer lays the grammar tree out as formatted source: one statement
// per line, four-space indentation, every statement terminated by ';'.

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.StringWithIndent(0))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Statement) StringWithIndent(level int) string {
	switch {
	case s.Let != nil:
		return indent(level) + "let " + s.Let.Name.Value + " = " + s.Let.Value.StringWithIndent(level) + ";"
	case s.Return != nil:
		return indent(level) + "return " + s.Return.Value.StringWithIndent(level) + ";"
	case s.Expr != nil:
		return indent(level) + s.Expr.Value.StringWithIndent(level) + ";"
	}
	return ""
}

func (b *Block) StringWithIndent(level int) string {
	if len(b.Statements) == 0 {
		return "{}"
	}

	var out strings.Builder
	out.WriteString("{\n")
	for _, s := range b.Statements {
		out.WriteString(s.StringWithIndent(level + 1))
		out.WriteString("\n")
	}
	out.WriteString(indent(level) + "}")
	return out.String()
}

func (e *Expr) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(e.Left.StringWithIndent(level))
	for _, op := range e.Right {
		b.WriteString(" " + op.Operator + " " + op.Operand.StringWithIndent(level))
	}
	return b.String()
}

func (c *Comparison) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(c.Left.StringWithIndent(level))
	for _, op := range c.Right {
		b.WriteString(" " + op.Operator + " " + op.Operand.StringWithIndent(level))
	}
	return b.String()
}

func (s *Sum) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(s.Left.StringWithIndent(level))
	for _, op := range s.Right {
		b.WriteString(" " + op.Operator + " " + op.Operand.StringWithIndent(level))
	}
	return b.String()
}

func (p *Product) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(p.Left.StringWithIndent(level))
	for _, op := range p.Right {
		b.WriteString(" " + op.Operator + " " + op.Operand.StringWithIndent(level))
	}
	return b.String()
}

func (u *Unary) StringWithIndent(level int) string {
	if u.Prefix != nil {
		return u.Prefix.Operator + u.Prefix.Operand.StringWithIndent(level)
	}

	var b strings.Builder
	b.WriteString(u.Call.Callee.StringWithIndent(level))
	for _, args := range u.Call.Args {
		list := make([]string, 0, len(args.List))
		for _, arg := range args.List {
			list = append(list, arg.StringWithIndent(level))
		}
		b.WriteString("(" + strings.Join(list, ", ") + ")")
	}
	return b.String()
}

func (p *Primary) StringWithIndent(level int) string {
	switch {
	case p.If != nil:
		out := "if (" + p.If.Condition.StringWithIndent(level) + ") " + p.If.Consequence.StringWithIndent(level)
		if p.If.Alternative != nil {
			out += " else " + p.If.Alternative.StringWithIndent(level)
		}
		return out
	case p.Function != nil:
		params := make([]string, 0, len(p.Function.Params))
		for _, param := range p.Function.Params {
			params = append(params, param.Value)
		}
		return "fn(" + strings.Join(params, ", ") + ") " + p.Function.Body.StringWithIndent(level)
	case p.Bool != nil:
		return *p.Bool
	case p.Int != nil:
		return *p.Int
	case p.Ident != nil:
		return *p.Ident
	case p.Group != nil:
		return "(" + p.Group.StringWithIndent(level) + ")"
	}
	return ""
}
