package grammar

import (
	"errors"
	"fmt"

	"mnlang/internal/ast"
	"mnlang/internal/parser"
)

// ErrMismatch is wrapped by Check when the two parsers disagree.
var ErrMismatch = errors.New("parsers disagree")

// ParseAST parses source with the reference grammar and lowers the result.
func ParseAST(filename, source string) (*ast.Program, error) {
	program, err := ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return ToAST(program)
}

// Check runs the Pratt parser and the reference grammar over the same source.
// Both must accept it with structurally equal trees, or both must reject it.
func Check(filename, source string) error {
	want, werr := parser.Parse(source)
	got, gerr := ParseAST(filename, source)

	switch {
	case werr != nil && gerr != nil:
		return nil
	case werr != nil:
		return fmt.Errorf("%w: grammar accepted input the parser rejected: %v", ErrMismatch, werr)
	case gerr != nil:
		return fmt.Errorf("%w: grammar rejected input the parser accepted: %v", ErrMismatch, gerr)
	case !ast.Equal(want, got):
		return fmt.Errorf("%w: parser built %q, grammar built %q", ErrMismatch, want.String(), got.String())
	}
	return nil
}
