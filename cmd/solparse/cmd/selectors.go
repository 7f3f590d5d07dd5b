package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"solparse/internal/abi"
)

func newSelectorsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "selectors FILE...",
		Short: "Print function selectors, event topics and error selectors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectors(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

func runSelectors(out, errOut io.Writer, paths []string) error {
	failed := false
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	for _, path := range paths {
		unit, source, err := parsePath(path)
		if err != nil {
			reportError(errOut, path, source, err)
			failed = true
			continue
		}

		entries, err := abi.Collect(unit)
		for _, e := range entries {
			name := e.Signature
			if e.Contract != "" {
				name = e.Contract + "." + name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Selector, e.Kind, name)
		}
		if err != nil {
			fmt.Fprintf(errOut, "%s %v\n", color.YellowString("warning:"), err)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	if failed {
		return errReported
	}
	return nil
}
