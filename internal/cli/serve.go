package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler-simulator/api"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				opts.config.Port = port
			}
			app := api.NewApp(api.NewSchedulerHandlerImpl(opts.config, opts.logger))
			addr := fmt.Sprintf(":%d", opts.config.Port)
			opts.logger.Info("listening", "addr", addr)
			return app.Listen(addr)
		},
	}
	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")
	return cmd
}
