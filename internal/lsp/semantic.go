package lsp

import (
	"mnlang/internal/ast"
	"mnlang/internal/lexer"
	"mnlang/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

type identClass struct {
	kind string
	decl bool
}

// collectSemanticTokens walks the token stream in source order. Identifier
// roles come from the tree, which may be partial when the document has
// syntax errors; unknown identifiers are plain variables.
func collectSemanticTokens(source string, program *ast.Program) []SemanticToken {
	idents := classifyIdentifiers(program)

	var tokens []SemanticToken
	for _, tok := range lexer.Tokenize(source) {
		switch {
		case tok.Type.IsKeyword():
			tokens = append(tokens, makeToken(tok, "keyword", false))
		case tok.Type == token.INT:
			tokens = append(tokens, makeToken(tok, "number", false))
		case tok.Type.IsOperator():
			tokens = append(tokens, makeToken(tok, "operator", false))
		case tok.Type == token.IDENT:
			class, ok := idents[tok.Pos.Offset]
			if !ok {
				class = identClass{kind: "variable"}
			}
			tokens = append(tokens, makeToken(tok, class.kind, class.decl))
		}
	}

	return tokens
}

// classifyIdentifiers keys identifier roles by byte offset.
func classifyIdentifiers(program *ast.Program) map[int]identClass {
	classes := make(map[int]identClass)
	if program == nil {
		return classes
	}

	bindings := collectBindings(program)
	set := func(id *ast.Ident, class identClass) {
		if _, done := classes[id.Pos().Offset]; !done {
			classes[id.Pos().Offset] = class
		}
	}

	ast.Inspect(program, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.LetStmt:
			kind := "variable"
			if _, ok := n.Value.(*ast.FunctionLiteral); ok {
				kind = "function"
			}
			set(n.Name, identClass{kind: kind, decl: true})
		case *ast.FunctionLiteral:
			for _, p := range n.Parameters {
				set(p, identClass{kind: "parameter", decl: true})
			}
		case *ast.CallExpr:
			if callee, ok := n.Function.(*ast.Ident); ok {
				set(callee, identClass{kind: "function"})
			}
		case *ast.Ident:
			kind, ok := bindings[n.Name]
			if !ok {
				kind = "variable"
			}
			set(n, identClass{kind: kind})
		}
		return true
	})

	return classes
}

func makeToken(tok token.Token, tokenType string, decl bool) SemanticToken {
	modifiers := 0
	if decl {
		modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
	}

	return SemanticToken{
		Line:           uint32(tok.Pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(len(tok.Literal)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
