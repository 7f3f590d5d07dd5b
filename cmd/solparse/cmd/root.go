package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"solparse/ast"
	"solparse/internal/config"
)

var log = commonlog.GetLogger("solparse.cli")

// errReported marks failures whose diagnostics were already printed.
var errReported = errors.New("errors reported")

type options struct {
	configFile string
	verbose    int
	cfg        *config.Config
}

// Execute runs the root command with the process arguments.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
	}
	return err
}

// NewRootCommand builds the command tree. A fresh tree per call keeps flag
// state out of package variables.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "solparse",
		Short: "Parse Solidity sources into a JSON or YAML syntax tree",
		Long: `solparse reads Solidity source files and prints their syntax tree.

Settings are read from .solparse.toml in the working directory, or from the
file given with --config. Command line flags override file settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	root.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity")

	root.AddCommand(
		newParseCommand(opts),
		newTokensCommand(opts),
		newSelectorsCommand(opts),
		newReplCommand(opts),
	)
	return root
}

func (o *options) load() error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Discover(o.configFile, dir)
	if err != nil {
		return err
	}
	cfg.Log.Verbosity += o.verbose
	o.cfg = cfg

	switch cfg.Color {
	case config.ColorNever:
		color.NoColor = true
	case config.ColorAlways:
		color.NoColor = false
	}

	commonlog.Configure(cfg.Log.Verbosity, cfg.LogFile())
	log.Debugf("configuration loaded: format=%s loc=%t range=%t", cfg.Output.Format, cfg.Output.Loc, cfg.Output.Range)
	return nil
}

func (o *options) encodeOptions() []ast.EncodeOption {
	var opts []ast.EncodeOption
	if o.cfg.Output.Loc {
		opts = append(opts, ast.WithLoc())
	}
	if o.cfg.Output.Range {
		opts = append(opts, ast.WithRange())
	}
	if o.cfg.Output.Indent != "" {
		opts = append(opts, ast.WithIndent("", o.cfg.Output.Indent))
	}
	return opts
}

func (o *options) encode(n ast.Node) ([]byte, error) {
	if o.cfg.Output.Format == config.FormatYAML {
		return ast.MarshalYAML(n, o.encodeOptions()...)
	}
	return ast.Marshal(n, o.encodeOptions()...)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
