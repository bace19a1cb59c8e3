package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/cli/config"
	httpctrl "github.com/secmon-lab/riskboard/pkg/controller/http"
	"github.com/secmon-lab/riskboard/pkg/service/metrics"
	"github.com/secmon-lab/riskboard/pkg/usecase"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
	"github.com/secmon-lab/riskboard/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe(sentryCfg *config.Sentry) *cli.Command {
	var addr string
	var enableMetrics bool
	var repoCfg config.Repository
	var levelsCfg config.Levels

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RISKBOARD_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "enable-metrics",
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Sources:     cli.EnvVars("RISKBOARD_ENABLE_METRICS"),
			Destination: &enableMetrics,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, levelsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			riskCfg, err := levelsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load levels config")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			ucOpts := []usecase.Option{
				usecase.WithRiskConfig(riskCfg),
			}
			httpOpts := []httpctrl.Options{
				httpctrl.WithSentry(sentryCfg.IsEnabled()),
			}

			if enableMetrics {
				m := metrics.New()
				ucOpts = append(ucOpts, usecase.WithMetrics(m))
				httpOpts = append(httpOpts, httpctrl.WithMetrics(m.Handler()))
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc.Risk, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"backend", repoCfg.Backend(),
					"metrics", enableMetrics)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				logging.Default().Info("Server shutdown completed")
			}

			return nil
		},
	}
}
