package parser

import (
	"fmt"
	"strings"

	"mnlang/internal/errors"
	"mnlang/token"
)

// ParseError is one syntax error. Detail carries the full diagnostic
// (suggestions, notes) for the reporter and the language server.
type ParseError struct {
	Code     string
	Message  string
	Position token.Position
	Expected string      // token type name, or "expression"
	Found    token.Token // offending token
	Detail   errors.CompilerError
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

// ErrorList collects the errors of one parse in source order.
type ErrorList []ParseError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}

	var b strings.Builder
	b.WriteString(l[0].Error())
	fmt.Fprintf(&b, " (and %d more errors)", len(l)-1)
	return b.String()
}

// Err returns nil for an empty list so callers can use it as a plain error.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l ErrorList) Diagnostics() []errors.CompilerError {
	diags := make([]errors.CompilerError, len(l))
	for i, e := range l {
		diags[i] = e.Detail
	}
	return diags
}
