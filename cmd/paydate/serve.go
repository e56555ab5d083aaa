package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/paydate-engine/api"
	"github.com/warp/paydate-engine/config"
)

func newServeCmd(a *app) *cobra.Command {
	var address string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the paydate HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				a.conf.Server.Address = address
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	c.Flags().StringVar(&address, "address", "", "listen address override, e.g. :3000")
	return c
}

// serve runs the HTTP server until ctx is done, then drains active
// requests for up to config.DefaultShutdownPeriod.
func (a *app) serve(ctx context.Context) error {
	sc := a.conf.Server
	handler := api.NewHandler(a.engine, a.logger, a.conf.Paydate.MaxCount)

	server := &http.Server{
		Addr:         sc.Address,
		Handler:      api.NewRouter(handler, sc.CORSOrigins),
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
		IdleTimeout:  sc.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			zap.String("op", "main.serve"),
			zap.String("address", sc.Address),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server", zap.String("op", "main.serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownPeriod)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	a.logger.Info("server stopped", zap.String("op", "main.serve"))
	return nil
}
