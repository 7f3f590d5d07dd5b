package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"solparse/ast"
	"solparse/internal/config"
	diag "solparse/internal/errors"
	"solparse/parser"
)

func newParseCommand(opts *options) *cobra.Command {
	var (
		format string
		loc    bool
		rng    bool
	)

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Print the syntax tree of one or more files",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("format") {
				opts.cfg.Output.Format = format
			}
			if flags.Changed("loc") {
				opts.cfg.Output.Loc = loc
			}
			if flags.Changed("range") {
				opts.cfg.Output.Range = rng
			}
			return opts.cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatJSON, "output format: json or yaml")
	cmd.Flags().BoolVar(&loc, "loc", false, "include line/column locations")
	cmd.Flags().BoolVar(&rng, "range", false, "include byte ranges")
	return cmd
}

func runParse(out, errOut io.Writer, opts *options, paths []string) error {
	startTime := time.Now()
	failed := 0

	for i, path := range paths {
		unit, source, err := parsePath(path)
		if err != nil {
			reportError(errOut, path, source, err)
			failed++
			continue
		}

		data, err := opts.encode(unit)
		if err != nil {
			return err
		}
		if i > 0 && opts.cfg.Output.Format == config.FormatYAML {
			data = append([]byte("---\n"), data...)
		}
		if opts.cfg.Output.Format == config.FormatJSON {
			data = append(data, '\n')
		}
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		color.New(color.FgRed).Fprintf(errOut, "Parsing failed for %d of %d files after %s\n", failed, len(paths), duration)
		return errReported
	}
	color.New(color.FgGreen).Fprintf(errOut, "Successfully parsed %d files in %s\n", len(paths), duration)
	return nil
}

func parsePath(path string) (*ast.SourceUnit, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	source := string(data)
	unit, err := parser.Parse(source, parser.WithFilename(path))
	return unit, source, err
}

// reportError renders parse errors with source context; other errors are
// printed as a single line.
func reportError(w io.Writer, path, source string, err error) {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		reporter := diag.NewErrorReporter(path, source)
		fmt.Fprint(w, reporter.FormatError(parseErr.Diagnostic()))
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.RedString("error:"), err)
}
