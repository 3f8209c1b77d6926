package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lpp/internal/lexer"
	"lpp/internal/source"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.ReadFile(args[0])
			if err != nil {
				printError("reading input", err)
				return err
			}
			status := writeTokens(cmd.OutOrStdout(), src)
			if status.State == lexer.ErrorAt {
				return errFailed
			}
			return nil
		},
	}
}

// writeTokens prints one "[index] Kind(start..end) value" line per token
// followed by the final lexer status.
func writeTokens(w io.Writer, src source.Source) lexer.Status {
	items, status := lexer.Collect(src)
	for i, item := range items {
		if item.Value != nil {
			fmt.Fprintf(w, "[%d] %s %s\n", i, item.Token, item.Value)
		} else {
			fmt.Fprintf(w, "[%d] %s\n", i, item.Token)
		}
	}
	fmt.Fprintf(w, "status: %s\n", status)
	return status
}
