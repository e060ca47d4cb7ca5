package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/nodeutil/layout"
)

var errNoDemo = errors.New("demo viewer not available")

func newDemoCmd(run DemoFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [file]",
		Short: "Show a layout file, or the built-in demo scene, in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if run == nil {
				return errNoDemo
			}
			logger := loggerFromContext(cmd.Context())

			var root *layout.Container
			if len(args) == 1 {
				var err error
				if root, err = loadLayout(args[0]); err != nil {
					return err
				}
				logger.Info("loaded layout", "file", args[0])
			}
			return run(cmd.Context(), root, logger)
		},
	}
}
