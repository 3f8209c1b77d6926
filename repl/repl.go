// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"lpp/internal/ast"
	lpperrors "lpp/internal/errors"
	"lpp/internal/parser"
	"lpp/internal/source"
)

const PROMPT = ">> "

// Start reads one program per line from in and writes its canonical
// rendering, or its diagnostics, to out. It returns when in is exhausted.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	prompt := color.New(color.FgCyan).SprintFunc()

	for {
		fmt.Fprint(out, prompt(PROMPT))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}
		Eval(out, line)
	}
}

// Eval parses line and reports the result to out.
func Eval(out io.Writer, line string) {
	src := source.String(line)
	res := parser.ParseSource(src)

	diags := lpperrors.Diagnostics(src, res)
	if len(diags) == 0 {
		fmt.Fprintln(out, ast.Render(res.Program, src))
		return
	}

	reporter := lpperrors.NewErrorReporter(source.Name(src), line)
	for _, d := range diags {
		fmt.Fprint(out, reporter.FormatError(d))
	}
}
