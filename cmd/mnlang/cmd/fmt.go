// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mnlang/grammar"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a source file",
	Long: `Prints the source reformatted with one statement per line and
four-space block indentation. With --write the file is rewritten in place.

Examples:
  mnlang fmt examples/add.mn
  mnlang fmt --write examples/add.mn`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file")
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]

	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	program, err := grammar.ParseString(path, source)
	if err != nil {
		return err
	}
	formatted := program.String()

	if fmtWrite && path != "-" {
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		log.Infof("formatted %s", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatted)
	return nil
}
