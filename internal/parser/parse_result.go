package parser

import (
	"mnlang/internal/ast"
	"mnlang/internal/lexer"
)

// ParseResult contains the full parsing result for one source file
type ParseResult struct {
	Filename string
	Source   string
	Program  *ast.Program
	Errors   ErrorList
}

// ParseSource parses source and keeps whatever statements parsed cleanly
// alongside the errors, which is what the editor tooling wants.
func ParseSource(filename, source string) *ParseResult {
	p := New(lexer.New(source))
	program := p.ParseProgram()

	return &ParseResult{
		Filename: filename,
		Source:   source,
		Program:  program,
		Errors:   p.Errors(),
	}
}

// Parse is the all-or-nothing entry point: a program with any syntax error
// yields a nil tree and the complete ErrorList.
func Parse(source string) (*ast.Program, error) {
	result := ParseSource("", source)
	if err := result.Errors.Err(); err != nil {
		return nil, err
	}
	return result.Program, nil
}

func (r *ParseResult) HasErrors() bool {
	return len(r.Errors) > 0
}
