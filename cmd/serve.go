package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "loan-compare/http"
	"loan-compare/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Start the comparison API with the free trial gate, rate limiting,
Prometheus metrics on /metrics and OpenTelemetry tracing.

Example:
  loancmp serve --config loancmp.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		shutdownTracing, err := tracing.Init(cmd.Context(), a.cfg.Tracing.ServiceName, version, a.cfg.Tracing.Endpoint)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				a.logger.Warn("tracing shutdown failed", zap.Error(err))
			}
		}()

		rateLimiter := httpLayer.NewRateLimiter(a.cfg.RateLimit.Capacity, a.cfg.RateLimit.Window)
		defer rateLimiter.Stop()

		gate := httpLayer.NewGate(a.access, a.cfg.Access.SessionTTL, a.logger)
		handler := httpLayer.NewRouter(httpLayer.Handlers{
			Loan:       httpLayer.NewLoanHandler(a.loans),
			Comparison: httpLayer.NewComparisonHandler(a.loans, a.scenarios, gate),
			Report:     httpLayer.NewReportHandler(a.loans, gate, a.logger),
			Access:     httpLayer.NewAccessHandler(gate),
			Rates:      httpLayer.NewRatesHandler(a.rates),
		}, rateLimiter)

		server := &http.Server{
			Addr:         a.cfg.Server.Addr,
			Handler:      handler,
			ReadTimeout:  a.cfg.Server.ReadTimeout,
			WriteTimeout: a.cfg.Server.WriteTimeout,
			IdleTimeout:  a.cfg.Server.IdleTimeout,
		}

		serverErr := make(chan error, 1)
		go func() {
			a.logger.Info("api listening", zap.String("addr", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-serverErr:
			return err
		case <-quit:
			a.logger.Info("shutting down server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			a.logger.Error("server shutdown failed", zap.Error(err))
			return err
		}

		a.logger.Info("server exited")
		return nil
	})
}
