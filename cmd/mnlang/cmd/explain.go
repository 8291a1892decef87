// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mnlang/internal/errors"
)

var explainCmd = &cobra.Command{
	Use:   "explain <code>",
	Short: "Describe a diagnostic code",
	Long: `Prints what a diagnostic code such as E0100 means.

Examples:
  mnlang explain E0103
  mnlang explain e0101`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	code := strings.ToUpper(strings.TrimSpace(args[0]))
	if !errors.IsKnownCode(code) {
		return fmt.Errorf("unknown error code %q", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", code, errors.GetErrorDescription(code))
	return nil
}
