package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/glossary/internal"
	"github.com/dmitrymomot/glossary/internal/handlers"
	"github.com/dmitrymomot/glossary/internal/views"
	"github.com/dmitrymomot/glossary/middlewares"
	"github.com/dmitrymomot/glossary/pkg/job"
	"github.com/dmitrymomot/glossary/pkg/redis"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the glossary over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	d, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	health := []internal.HealthOption{
		internal.WithReadinessCheck("store", d.store.Healthcheck),
	}
	if d.redis != nil {
		health = append(health, internal.WithReadinessCheck("redis", redis.Healthcheck(d.redis)))
	}

	runOpts := []internal.RunOption{
		internal.WithContext(ctx),
		internal.ShutdownTimeout(d.cfg.Server.ShutdownTimeout),
	}

	if d.cfg.Jobs.Enabled {
		jobs, err := d.jobs(ctx)
		if err != nil {
			return err
		}
		health = append(health, internal.WithReadinessCheck("jobs", job.Healthcheck(jobs)))
		runOpts = append(runOpts,
			internal.StartupHook(jobs.StartFunc()),
			internal.ShutdownHook(jobs.Shutdown()),
		)
	}

	app := internal.New(
		internal.WithCustomLogger(d.log.With(slog.String("component", "http"))),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger("/health/live", "/health/ready"),
			middlewares.Recover(),
		),
		internal.WithErrorHandler(handlers.ErrorHandler(d.title())),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithStaticFiles("/static/", views.StaticFS(), "."),
		internal.WithHealthChecks(health...),
		internal.WithHandlers(handlers.NewGlossary(d.svc, d.title(),
			handlers.WithCache(d.pages, d.cfg.Cache.TTL),
			handlers.WithLogger(d.log.With(slog.String("component", "handlers"))),
		)),
	)

	return app.Run(d.cfg.Server.Address, runOpts...)
}
