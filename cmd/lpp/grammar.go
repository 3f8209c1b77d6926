package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lpp/grammar"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the language grammar in EBNF",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), grammar.EBNF())
		},
	}
}
