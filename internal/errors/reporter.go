package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"mnlang/token"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error ErrorLevel = "error"
	Help  ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string         // Error code like E0100
	Message     string         // Primary error message
	Position    token.Position // Location in source
	Length      int            // Length of the problematic region
	Suggestions []Suggestion   // Suggested fixes
	Notes       []string       // Additional context notes
	HelpText    string         // Help text for the error
}

// Suggestion is a hint, optionally with text to splice into the source.
// A zero Length inserts Replacement at Position.
type Suggestion struct {
	Message     string
	Replacement string
	Position    token.Position
	Length      int
}

// ErrorReporter renders diagnostics as a source snippet with a caret
// underline, followed by suggestions and notes.
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// palette is rebuilt per diagnostic so that changes to color.NoColor apply.
type palette struct {
	level  func(...any) string
	accent func(...any) string
	help   func(...any) string
	note   func(...any) string
	dim    func(...any) string
	bold   func(...any) string
}

func newPalette(level ErrorLevel) palette {
	levelColor := color.New(color.FgRed, color.Bold)
	if level == Help {
		levelColor = color.New(color.FgGreen, color.Bold)
	}
	return palette{
		level:  levelColor.SprintFunc(),
		accent: color.New(color.FgRed, color.Bold).SprintFunc(),
		help:   color.New(color.FgCyan).SprintFunc(),
		note:   color.New(color.FgBlue).SprintFunc(),
		dim:    color.New(color.Faint).SprintFunc(),
		bold:   color.New(color.Bold).SprintFunc(),
	}
}

// FormatError renders one diagnostic:
//
//	error[E0100]: expected Ident, found Assign
//	    --> main.mn:2:5
//	     │
//	  2  │ let = 10;
//	     │     ^
//	     = help: ...
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	p := newPalette(err.Level)

	width := gutterWidth(err.Position.Line + 1)
	pad := strings.Repeat(" ", width)
	bar := p.dim("│")

	level := string(err.Level)
	if level == "" {
		level = string(Error)
	}
	if err.Code != "" {
		level += "[" + err.Code + "]"
	}
	fmt.Fprintf(&b, "%s: %s\n", p.level(level), p.bold(err.Message))
	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", pad, p.dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", pad, bar)

	line := err.Position.Line
	if text, ok := er.line(line - 1); ok {
		fmt.Fprintf(&b, "%s %s %s\n", p.dim(lineNumber(line-1, width)), bar, text)
	}
	if text, ok := er.line(line); ok {
		fmt.Fprintf(&b, "%s %s %s\n", p.bold(lineNumber(line, width)), bar, text)
		fmt.Fprintf(&b, "%s %s %s\n", pad, bar, underline(err.Position.Column, err.Length, "^", p.accent))
	}
	if text, ok := er.line(line + 1); ok {
		fmt.Fprintf(&b, "%s %s %s\n", p.dim(lineNumber(line+1, width)), bar, text)
	}

	for _, s := range err.Suggestions {
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, p.dim("="), p.help("help:"), s.Message)
		if s.Replacement != "" {
			er.writeReplacement(&b, s, pad, width, p)
		}
	}
	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, p.dim("="), p.note("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, p.dim("="), p.help("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// writeReplacement shows the source line with the suggestion applied and
// marks the spliced text with '+'.
func (er *ErrorReporter) writeReplacement(b *strings.Builder, s Suggestion, pad string, width int, p palette) {
	text, ok := er.line(s.Position.Line)
	if !ok {
		return
	}
	start := min(max(s.Position.Column-1, 0), len(text))
	end := min(start+max(s.Length, 0), len(text))
	patched := text[:start] + s.Replacement + text[end:]

	bar := p.dim("│")
	fmt.Fprintf(b, "%s %s %s\n", p.dim(lineNumber(s.Position.Line, width)), bar, patched)
	fmt.Fprintf(b, "%s %s %s\n", pad, bar, underline(start+1, len(s.Replacement), "+", p.help))
}

// FormatErrors formats a list of errors in order
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}
	return b.String()
}

// Error implements the error interface with a compact single-line form
func (err CompilerError) Error() string {
	if err.Code != "" {
		return fmt.Sprintf("%s: %s[%s]: %s", err.Position, err.Level, err.Code, err.Message)
	}
	return fmt.Sprintf("%s: %s: %s", err.Position, err.Level, err.Message)
}

// line returns the 1-based source line n.
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

func underline(column, length int, mark string, paint func(...any) string) string {
	return strings.Repeat(" ", max(column-1, 0)) + paint(strings.Repeat(mark, max(length, 1)))
}

func lineNumber(n, width int) string {
	return fmt.Sprintf("%*d", width, n)
}

// gutterWidth is at least 3 so that short files line up
func gutterWidth(line int) int {
	return max(len(fmt.Sprint(line)), 3)
}
