// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"mnlang/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg = config.Default()
)

var log = commonlog.GetLogger("mnlang.cli")

var rootCmd = &cobra.Command{
	Use:   "mnlang",
	Short: "Lexer, parser and tooling for the mnlang language",
	Long: `mnlang turns source text into a syntax tree and reports syntax errors.

Commands:
  lex      - print the token stream
  parse    - print the syntax tree
  check    - compare the Pratt parser with the reference grammar
  fmt      - reformat a source file
  explain  - describe a diagnostic code
  repl     - interactive prompt`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	verbosity := cfg.Log.Verbosity
	if verbose {
		verbosity = max(verbosity, 2)
	}
	commonlog.Configure(verbosity, cfg.LogFile())

	if !cfg.Color {
		color.NoColor = true
	}

	log.Debugf("config loaded (engine=%s, render=%s)", cfg.Engine, cfg.Render)
	return nil
}

// readSource reads a file, or standard input when the path is "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func printSuccess(cmd *cobra.Command, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

func printFailure(cmd *cobra.Command, format string, args ...any) {
	color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
