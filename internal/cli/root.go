// Package cli implements the nodeutil command-line interface.
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every layout pass. Loggers are passed through context.Context.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/nodeutil/layout"
)

// DemoFunc opens the interactive viewer on root. A nil root asks for the
// built-in demo scene.
type DemoFunc func(ctx context.Context, root *layout.Container, logger *log.Logger) error

// NewRootCommand builds the command tree. demo backs the demo subcommand.
func NewRootCommand(demo DemoFunc) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "nodeutil",
		Short:        "nodeutil lays out 2D scene trees",
		Long:         `nodeutil builds box layouts described in TOML files and either prints the resulting tree or shows it in a window.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			layout.SetLogger(logger.WithPrefix("layout"))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDumpCmd())
	root.AddCommand(newDemoCmd(demo))

	return root
}

// Execute runs the CLI with the given arguments.
func Execute(ctx context.Context, demo DemoFunc, args []string) error {
	root := NewRootCommand(demo)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
