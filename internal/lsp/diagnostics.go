package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"mnlang/internal/parser"
)

const diagnosticSource = "mnlang-parser"

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE display.
// The result is never nil so that publishing it clears stale diagnostics.
func ConvertParseErrors(parseErrors parser.ErrorList) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(parseErrors))

	for _, parseErr := range parseErrors {
		length := max(parseErr.Detail.Length, 1)
		line := uint32(max(parseErr.Position.Line-1, 0))
		start := uint32(max(parseErr.Position.Column-1, 0))

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(length)},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: parseErr.Code},
			Source:   ptrString(diagnosticSource),
			Message:  diagnosticMessage(parseErr),
		})
	}

	return diagnostics
}

// diagnosticMessage appends suggestions and help text as extra lines.
func diagnosticMessage(parseErr parser.ParseError) string {
	lines := []string{parseErr.Message}
	for _, s := range parseErr.Detail.Suggestions {
		lines = append(lines, "help: "+s.Message)
	}
	if parseErr.Detail.HelpText != "" {
		lines = append(lines, "help: "+parseErr.Detail.HelpText)
	}
	return strings.Join(lines, "\n")
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
