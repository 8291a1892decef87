package errors

import (
	"fmt"

	"mnlang/token"
)

// SyntaxErrorBuilder provides a fluent interface for creating syntax errors with suggestions
type SyntaxErrorBuilder struct {
	err CompilerError
}

// NewSyntaxError creates a new syntax error builder
func NewSyntaxError(code, message string, pos token.Position) *SyntaxErrorBuilder {
	return &SyntaxErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *SyntaxErrorBuilder) WithLength(length int) *SyntaxErrorBuilder {
	b.err.Length = length
	return b
}

func (b *SyntaxErrorBuilder) WithSuggestion(message string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *SyntaxErrorBuilder) WithReplacement(message, replacement string, pos token.Position, length int) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

func (b *SyntaxErrorBuilder) WithNote(note string) *SyntaxErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *SyntaxErrorBuilder) WithHelp(help string) *SyntaxErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *SyntaxErrorBuilder) Build() CompilerError {
	return b.err
}

// tokenLength is the caret width used for a token; EOF gets a single caret.
func tokenLength(tok token.Token) int {
	if tok.Type == token.EOF || len(tok.Literal) == 0 {
		return 1
	}
	return len(tok.Literal)
}

// UnexpectedToken creates an error for a required token that is missing
func UnexpectedToken(expected token.Type, found token.Token) CompilerError {
	b := NewSyntaxError(ErrorUnexpectedToken,
		fmt.Sprintf("expected %s, found %s", expected, found), found.Pos).
		WithLength(tokenLength(found))

	switch {
	case expected == token.IDENT && found.Type.IsKeyword():
		b.WithSuggestion(fmt.Sprintf("'%s' is a reserved keyword and cannot be used as a name", found.Literal))
	case expected == token.RPAREN || expected == token.RBRACE:
		closing := closingText(expected)
		b.WithSuggestion(fmt.Sprintf("check for an unbalanced '%s'", closingFor(expected))).
			WithReplacement(fmt.Sprintf("insert '%s' here", closing), closing, found.Pos, 0)
	case expected == token.ASSIGN:
		b.WithHelp("let statements have the form: let <name> = <expression>;")
	}

	return b.Build()
}

// MissingExpression creates an error for a token that cannot start an expression
func MissingExpression(found token.Token) CompilerError {
	b := NewSyntaxError(ErrorMissingExpression,
		fmt.Sprintf("expected expression, found %s", found), found.Pos).
		WithLength(tokenLength(found))

	switch found.Type {
	case token.SEMICOLON, token.RPAREN, token.RBRACE, token.EOF:
		b.WithSuggestion("an operand or value is missing here")
	case token.ILLEGAL:
		b.WithNote(fmt.Sprintf("%q is not part of the language", found.Literal))
	}

	return b.Build()
}

// IntegerOverflow creates an error for an integer literal outside the int64 range
func IntegerOverflow(lit token.Token) CompilerError {
	return NewSyntaxError(ErrorIntegerOverflow,
		fmt.Sprintf("integer literal %s overflows a 64-bit integer", lit.Literal), lit.Pos).
		WithLength(tokenLength(lit)).
		WithNote("the largest integer literal is 9223372036854775807").
		Build()
}

// UnterminatedBlock creates an error for a block that reaches end of input
func UnterminatedBlock(open token.Token, found token.Token) CompilerError {
	return NewSyntaxError(ErrorUnterminatedBlock,
		fmt.Sprintf("expected %s, found %s", token.RBRACE, found), found.Pos).
		WithReplacement(fmt.Sprintf("add '}' to close the block opened at %s", open.Pos), "}", found.Pos, 0).
		Build()
}

// IllegalCharacter creates an error for a character the lexer could not classify
func IllegalCharacter(tok token.Token) CompilerError {
	return NewSyntaxError(ErrorIllegalCharacter,
		fmt.Sprintf("illegal character %q", tok.Literal), tok.Pos).
		WithLength(tokenLength(tok)).
		Build()
}

func closingText(t token.Type) string {
	if t == token.RPAREN {
		return ")"
	}
	return "}"
}

func closingFor(t token.Type) string {
	if t == token.RPAREN {
		return "("
	}
	return "{"
}
