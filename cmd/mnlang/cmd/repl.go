// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"github.com/spf13/cobra"

	"mnlang/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive prompt",
	Long: `Reads one line at a time and prints the parsed program or its syntax
errors. Prompt, rendering and engine come from the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), repl.OptionsFrom(cfg))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
