package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduler-simulator/config"
	"os-scheduler-simulator/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	config *config.SchedulerConfig
	logger *slog.Logger
}

// NewRootCmd creates the root cobra command for the simulator.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "CPU scheduling simulator",
		Long:  "schedsim computes execution order, turnaround and waiting time under round robin, priority, FCFS, SJF and multilevel feedback queue scheduling.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = opts.logFormat
			}
			opts.config = cfg
			opts.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml when present)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(opts),
		newRunCmd(opts),
	)
	return root
}
