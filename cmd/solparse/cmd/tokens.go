package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"solparse/parser"
	"solparse/token"
)

func newTokensCommand(opts *options) *cobra.Command {
	var trivia bool

	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], trivia)
		},
	}
	cmd.Flags().BoolVar(&trivia, "comments", false, "also print the comments attached to each token")
	return cmd
}

func runTokens(out, errOut io.Writer, path string, trivia bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	tokens, err := parser.Tokenize(string(data))
	if err != nil {
		reportError(errOut, path, string(data), err)
		return errReported
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, tok := range tokens {
		if trivia {
			for _, c := range tok.Leading {
				fmt.Fprintf(tw, "%d:%d\t%s\t%q\n", c.Position.Line, c.Position.Column, "COMMENT("+c.Kind.String()+")", c.Text)
			}
		}
		if tok.Type == token.EOF {
			fmt.Fprintf(tw, "%d:%d\t%s\t\n", tok.Position.Line, tok.Position.Column, tok.Type)
			continue
		}
		fmt.Fprintf(tw, "%d:%d\t%s\t%q\n", tok.Position.Line, tok.Position.Column, tok.Type, tok.Lexeme)
	}
	return tw.Flush()
}
