// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"mnlang/grammar"
	"mnlang/internal/ast"
	"mnlang/internal/config"
	"mnlang/internal/errors"
	"mnlang/internal/parser"
)

const PROMPT = ">> "

// sourceName labels REPL input in diagnostics
const sourceName = "<repl>"

var log = commonlog.GetLogger("mnlang.repl")

type Options struct {
	Prompt string
	Render string
	Engine string
	Color  bool
}

// OptionsFrom picks the REPL settings out of a loaded config.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Prompt: cfg.Prompt,
		Render: cfg.Render,
		Engine: cfg.Engine,
		Color:  cfg.Color,
	}
}

// Start reads one line at a time, parses it and prints either the rendered
// program or its diagnostics. It returns at end of input.
func Start(in io.Reader, out io.Writer, opts Options) error {
	if opts.Prompt == "" {
		opts.Prompt = PROMPT
	}
	if !opts.Color {
		color.NoColor = true
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, opts.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fmt.Fprint(out, Eval(line, opts))
	}
}

// Eval parses a single input and returns what the REPL prints for it.
func Eval(line string, opts Options) string {
	program, diags := parseLine(line, opts.Engine)
	if len(diags) > 0 {
		log.Debugf("%d syntax errors", len(diags))
		return errors.NewErrorReporter(sourceName, line).FormatErrors(diags)
	}

	if opts.Render == config.RenderTree {
		return ast.Dump(program)
	}
	return program.String() + "\n"
}

func parseLine(line, engine string) (*ast.Program, []errors.CompilerError) {
	if engine == config.EngineGrammar {
		program, err := grammar.ParseAST(sourceName, line)
		if err != nil {
			return nil, []errors.CompilerError{grammar.Diagnostic(err)}
		}
		return program, nil
	}

	result := parser.ParseSource(sourceName, line)
	if result.HasErrors() {
		return nil, result.Errors.Diagnostics()
	}
	return result.Program, nil
}
