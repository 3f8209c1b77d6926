package main

import (
	"github.com/spf13/cobra"

	"lpp/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
