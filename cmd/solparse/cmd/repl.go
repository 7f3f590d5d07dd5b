package cmd

import (
	"github.com/spf13/cobra"

	"solparse/repl"
)

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse snippets interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), opts.encodeOptions()...)
		},
	}
}
