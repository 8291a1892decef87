package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar mirrors the operator table of the Pratt parser with one
// struct pair per precedence level, lowest first. Operator chains are
// captured flat and folded left when converted to the AST.

type Program struct {
	Pos        lexer.Position
	Statements []*Statement `@@*`
}

type Statement struct {
	Let    *LetStmt    `  @@`
	Return *ReturnStmt `| @@`
	Expr   *ExprStmt   `| @@`
}

type LetStmt struct {
	Pos   lexer.Position
	Name  *PosIdent `"let" @@ "="`
	Value *Expr     `@@ [ ";" ]`
}

type ReturnStmt struct {
	Pos   lexer.Position
	Value *Expr `"return" @@ [ ";" ]`
}

type ExprStmt struct {
	Pos   lexer.Position
	Value *Expr `@@ [ ";" ]`
}

type Block struct {
	Pos        lexer.Position
	Open       string       `@"{"`
	Statements []*Statement `@@* "}"`
}

type Expr struct {
	Pos   lexer.Position
	Left  *Comparison   `@@`
	Right []*EqualityOp `@@*`
}

type EqualityOp struct {
	Pos      lexer.Position
	Operator string      `@("==" | "!=")`
	Operand  *Comparison `@@`
}

type Comparison struct {
	Pos   lexer.Position
	Left  *Sum            `@@`
	Right []*ComparisonOp `@@*`
}

type ComparisonOp struct {
	Pos      lexer.Position
	Operator string `@("<" | ">")`
	Operand  *Sum   `@@`
}

type Sum struct {
	Pos   lexer.Position
	Left  *Product `@@`
	Right []*SumOp `@@*`
}

type SumOp struct {
	Pos      lexer.Position
	Operator string   `@("+" | "-")`
	Operand  *Product `@@`
}

type Product struct {
	Pos   lexer.Position
	Left  *Unary       `@@`
	Right []*ProductOp `@@*`
}

type ProductOp struct {
	Pos      lexer.Position
	Operator string `@("*" | "/")`
	Operand  *Unary `@@`
}

type Unary struct {
	Prefix *Prefix `  @@`
	Call   *Call   `| @@`
}

type Prefix struct {
	Pos      lexer.Position
	Operator string `@("!" | "-")`
	Operand  *Unary `@@`
}

type Call struct {
	Callee *Primary    `@@`
	Args   []*CallArgs `@@*`
}

type CallArgs struct {
	Pos  lexer.Position
	Open string  `@"("`
	List []*Expr `[ @@ { "," @@ } ] ")"`
}

type Primary struct {
	Pos      lexer.Position
	If       *IfExpr       `  @@`
	Function *FunctionExpr `| @@`
	Bool     *string       `| @("true" | "false")`
	Int      *string       `| @Int`
	Ident    *string       `| @Ident`
	Group    *Expr         `| "(" @@ ")"`
}

type IfExpr struct {
	Pos         lexer.Position
	Condition   *Expr  `"if" "(" @@ ")"`
	Consequence *Block `@@`
	Alternative *Block `[ "else" @@ ]`
}

type FunctionExpr struct {
	Pos    lexer.Position
	Params []*PosIdent `"fn" "(" [ @@ { "," @@ } ] ")"`
	Body   *Block      `@@`
}

type PosIdent struct {
	Pos   lexer.Position
	Value string `@Ident`
}
