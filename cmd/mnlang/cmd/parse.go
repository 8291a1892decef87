// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mnlang/grammar"
	"mnlang/internal/ast"
	"mnlang/internal/config"
	"mnlang/internal/errors"
	"mnlang/internal/parser"
)

var (
	parseTree   bool
	parseEngine string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its syntax tree",
	Long: `Parses a source file and prints the canonical rendering of the tree,
or the indented node dump with --tree. Syntax errors are reported with the
offending line and a caret, and the command fails.

Engines:
  pratt    - hand-written Pratt parser (default)
  grammar  - reference grammar

Examples:
  mnlang parse examples/add.mn
  mnlang parse --tree --engine grammar examples/add.mn`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseTree, "tree", false, "print the node dump instead of the canonical rendering")
	parseCmd.Flags().StringVar(&parseEngine, "engine", "", "parser engine (pratt, grammar); defaults to the config value")
}

func runParse(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	path := args[0]

	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	engine := cfg.Engine
	if parseEngine != "" {
		engine = parseEngine
	}

	var (
		program *ast.Program
		diags   []errors.CompilerError
	)
	switch engine {
	case config.EnginePratt:
		result := parser.ParseSource(path, source)
		program, diags = result.Program, result.Errors.Diagnostics()
	case config.EngineGrammar:
		program, err = grammar.ParseAST(path, source)
		if err != nil {
			diags = []errors.CompilerError{grammar.Diagnostic(err)}
		}
	default:
		return fmt.Errorf("unknown engine %q", engine)
	}

	formattedDuration := formatDuration(time.Since(startTime))

	if len(diags) > 0 {
		reporter := errors.NewErrorReporter(path, source)
		fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatErrors(diags))
		printFailure(cmd, "Parsing failed after %s", formattedDuration)
		return fmt.Errorf("%s: %d syntax errors", path, len(diags))
	}

	render := cfg.Render
	if parseTree {
		render = config.RenderTree
	}
	if render == config.RenderTree {
		fmt.Fprint(cmd.OutOrStdout(), ast.Dump(program))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), program.String())
	}

	log.Infof("parsed %s with %s engine", path, engine)
	printSuccess(cmd, "Successfully parsed %s in %s", path, formattedDuration)
	return nil
}
