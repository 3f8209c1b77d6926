package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lpp/internal/ast"
	lpperrors "lpp/internal/errors"
	"lpp/internal/parser"
	"lpp/internal/source"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime := time.Now()
			path := args[0]

			src, err := source.ReadFile(path)
			if err != nil {
				printError("reading input", err)
				return err
			}

			res := parser.ParseSource(src)
			diags := lpperrors.Diagnostics(src, res)
			duration := formatDuration(time.Since(startTime))

			out := cmd.OutOrStdout()
			if len(diags) == 0 {
				fmt.Fprintln(out, ast.Render(res.Program, src))
				fmt.Fprintln(out, color.GreenString("Successfully parsed %s in %s", path, duration))
				return nil
			}

			reporter := lpperrors.NewErrorReporter(path, src.Text())
			for _, d := range diags {
				fmt.Fprint(out, reporter.FormatError(d))
			}
			fmt.Fprintln(out, color.RedString("Parsing failed after %s", duration))
			return errFailed
		},
	}
}
