package grammar

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"mnlang/internal/errors"
	"mnlang/token"
)

var buildParser = sync.OnceValues(func() (*participle.Parser[Program], error) {
	return participle.Build[Program](
		participle.Lexer(Lexer),
		participle.UseLookahead(2),
	)
})

// ParseString parses source with the reference grammar.
func ParseString(filename, source string) (*Program, error) {
	parser, err := buildParser()
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return parser.ParseString(filename, source)
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	program, err := ParseString(path, string(source))
	if err != nil {
		reportParseError(string(source), err)
		return nil, err
	}
	return program, nil
}

// EBNF returns the grammar in participle's EBNF notation.
func EBNF() (string, error) {
	parser, err := buildParser()
	if err != nil {
		return "", err
	}
	return parser.String(), nil
}

// Diagnostic turns a grammar parse error into a compiler diagnostic.
func Diagnostic(err error) errors.CompilerError {
	pe, ok := err.(participle.Error)
	if !ok {
		return errors.NewSyntaxError(errors.ErrorGrammarMismatch, err.Error(), token.Position{}).Build()
	}

	pos := pe.Position()
	return errors.NewSyntaxError(errors.ErrorGrammarMismatch, pe.Message(), token.Position{
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}).Build()
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("Syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	color.Red("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("→ %s\n", pe.Message())
}
