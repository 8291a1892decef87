package errors

// Error codes for the mnlang front end.
// These codes are used in diagnostics printed by the CLI, the REPL and the
// language server so that the same problem is identified the same way
// everywhere.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: A specific token was required but another one was found
	ErrorUnexpectedToken = "E0100"

	// E0101: No expression can start with the current token
	ErrorMissingExpression = "E0101"

	// E0102: Integer literal does not fit in a signed 64-bit integer
	ErrorIntegerOverflow = "E0102"

	// E0103: Block reached end of input before its closing brace
	ErrorUnterminatedBlock = "E0103"

	// E0104: Character the lexer could not classify
	ErrorIllegalCharacter = "E0104"

	// E0900: Reference grammar rejected the input
	ErrorGrammarMismatch = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "A required token is missing or a different token was found"
	case ErrorMissingExpression:
		return "An expression was expected but the current token cannot start one"
	case ErrorIntegerOverflow:
		return "Integer literal is larger than the largest 64-bit signed integer"
	case ErrorUnterminatedBlock:
		return "A '{' block is never closed with '}'"
	case ErrorIllegalCharacter:
		return "Source contains a character that is not part of the language"
	case ErrorGrammarMismatch:
		return "The reference grammar could not parse the input"
	default:
		return unknownDescription
	}
}

const unknownDescription = "Unknown error code"

// IsKnownCode reports whether code is one of the codes above
func IsKnownCode(code string) bool {
	return GetErrorDescription(code) != unknownDescription
}
