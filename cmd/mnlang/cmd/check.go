// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mnlang/grammar"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check that both parser engines agree on each file",
	Long: `Parses each file with the Pratt parser and the reference grammar.
A file passes when both engines build the same tree, or when both reject it.

Examples:
  mnlang check examples/*.mn`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		source, err := readSource(cmd, path)
		if err != nil {
			return err
		}

		if err := grammar.Check(path, source); err != nil {
			failed++
			printFailure(cmd, "%s: %v", path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok  %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files disagree", failed, len(args))
	}
	return nil
}
