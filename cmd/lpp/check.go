package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lpp/grammar"
	lpperrors "lpp/internal/errors"
	"lpp/internal/parser"
	"lpp/internal/source"
)

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [pattern...]",
		Short: "Parse many files and report diagnostics",
		Long: `Check expands each pattern with ** support, parses every matching file
and prints its diagnostics. Without patterns the config's include list is
used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if len(patterns) == 0 {
				patterns = opts.cfg.Include
			}

			files, err := expandPatterns(patterns, opts.cfg.Exclude)
			if err != nil {
				printError("expanding patterns", err)
				return err
			}

			startTime := time.Now()
			reports, err := checkFiles(cmd.Context(), files, opts.cfg.Jobs, opts.cfg.Reference)
			if err != nil {
				printError("checking files", err)
				return err
			}

			failed := writeReports(cmd.OutOrStdout(), reports, time.Since(startTime))
			if failed > 0 {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "files parsed in parallel (default: config jobs)")
	cmd.Flags().BoolVar(&opts.reference, "reference", false, "cross-check against the reference grammar")
	return cmd
}

// expandPatterns resolves doublestar patterns into a sorted, de-duplicated
// file list. Files matching any exclude pattern are dropped.
func expandPatterns(patterns, exclude []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(m, exclude) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}

func excluded(path string, exclude []string) bool {
	return slices.ContainsFunc(exclude, func(pattern string) bool {
		ok, _ := doublestar.PathMatch(pattern, path)
		return ok
	})
}

type fileReport struct {
	Path        string
	Source      source.Source
	Diagnostics []lpperrors.CompilerError
	Statements  int
}

// checkFiles parses files concurrently, at most jobs at a time. Each file
// gets its own parser. Reports come back in the order of files.
func checkFiles(ctx context.Context, files []string, jobs int, reference bool) ([]fileReport, error) {
	reports := make([]fileReport, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := source.ReadFile(path)
			if err != nil {
				return err
			}

			res := parser.ParseSource(src)
			diags := lpperrors.Diagnostics(src, res)
			if reference {
				if m := grammar.Compare(src, res); m != nil {
					diags = append(diags, lpperrors.GrammarMismatch(src, m.Offset, m.Error()))
				}
			}

			log.Debugf("checked %s: %d statements, %d diagnostics", path, len(res.Program.Statements), len(diags))
			reports[i] = fileReport{
				Path:        path,
				Source:      src,
				Diagnostics: diags,
				Statements:  len(res.Program.Statements),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// writeReports prints diagnostics per file and a summary. It returns the
// number of files with diagnostics.
func writeReports(w io.Writer, reports []fileReport, elapsed time.Duration) int {
	failed := 0
	codes := make(map[string]int)

	for _, r := range reports {
		if len(r.Diagnostics) == 0 {
			continue
		}
		failed++
		reporter := lpperrors.NewErrorReporter(r.Path, r.Source.Text())
		for _, d := range r.Diagnostics {
			fmt.Fprint(w, reporter.FormatError(d))
			codes[d.Code]++
		}
	}

	if len(codes) > 0 {
		keys := make([]string, 0, len(codes))
		for code := range codes {
			keys = append(keys, code)
		}
		sort.Strings(keys)

		var b strings.Builder
		for _, code := range keys {
			fmt.Fprintf(&b, "  %s %-40s %d\n", code, lpperrors.GetErrorDescription(code), codes[code])
		}
		fmt.Fprint(w, b.String())
	}

	summary := fmt.Sprintf("Checked %d files in %s, %d with errors", len(reports), formatDuration(elapsed), failed)
	if failed > 0 {
		fmt.Fprintln(w, color.RedString(summary))
	} else {
		fmt.Fprintln(w, color.GreenString(summary))
	}
	return failed
}
