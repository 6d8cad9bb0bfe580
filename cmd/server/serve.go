package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	absencehandler "worktime/internal/absence/handler"
	compliancehandler "worktime/internal/compliance/handler"
	integrityhandler "worktime/internal/integrity/handler"
	"worktime/internal/platform/httpserver"
	"worktime/internal/platform/metrics"
	"worktime/internal/platform/servicetoken"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API used by schedulers and administrators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, opts.cfg, opts.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			// A nil *Reconciler must not reach the handler as a non-nil interface.
			var reconciler integrityhandler.Reconciler
			if a.reconciler != nil {
				reconciler = a.reconciler
			}

			router := newRouter(routerConfig{
				logger:  opts.logger,
				metrics: metrics.New(),
				tokens:  servicetoken.New(opts.cfg.ServiceTokenKey, opts.cfg.ServiceTokenIssuer),
				health:  a.healthChecks(),
				handlers: []registrar{
					compliancehandler.New(a.compliance, opts.logger),
					integrityhandler.New(a.integrity, reconciler, opts.logger),
					absencehandler.New(a.vacation, a.escalator, opts.logger),
				},
			})

			return httpserver.Run(ctx, httpserver.New(opts.cfg.Addr, router), opts.logger)
		},
	}
}
