// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mnlang/internal/lexer"
	"mnlang/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the token stream of a source file",
	Long: `Prints one token per line as position, type and literal.
The stream always ends with an Eof token; characters that belong to no
token are printed as Illegal.

Examples:
  mnlang lex examples/add.mn
  echo "let x = 5;" | mnlang lex -`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, tok := range lexer.Tokenize(source) {
		literal := tok.Literal
		if tok.Type == token.EOF {
			literal = ""
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Pos, tok.Type, literal)
	}
	return w.Flush()
}
