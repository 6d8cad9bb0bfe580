package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"worktime/internal/platform/config"
	"worktime/internal/platform/logger"
)

// rootOptions carries the configuration loaded once for every subcommand.
type rootOptions struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "worktime",
		Short:         "Workforce time tracking compliance and evidence core",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.cfg = cfg
			opts.logger = logger.New(cfg.LogLevel, cfg.LogFormat)
			slog.SetDefault(opts.logger)
			return nil
		},
	}

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newEvaluateCommand(opts))
	cmd.AddCommand(newDailyRootCommand(opts))
	cmd.AddCommand(newReconcileCommand(opts))
	cmd.AddCommand(newManifestCommand(opts))
	cmd.AddCommand(newVacationCommand(opts))
	cmd.AddCommand(newEscalateCommand(opts))
	cmd.AddCommand(newIssueTokenCommand(opts))

	return cmd
}
