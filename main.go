// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"mnlang/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Hello %s! This is the mnlang programming language!\n", currentUser.Username)
	fmt.Printf("Feel free to type in commands\n")
	if err := repl.Start(os.Stdin, os.Stdout, repl.Options{Prompt: repl.PROMPT, Color: true}); err != nil {
		fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		os.Exit(1)
	}
}
