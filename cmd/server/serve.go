package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/warp/leave-planner/api"
	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/metrics"
	"github.com/warp/leave-planner/store/sqlite"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	log := a.logger.With().Str("component", "server").Logger()

	// Initialize store
	store, err := sqlite.New(a.cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer store.Close()

	cal := calendar.NewLayered(calendar.NewStatic(), a.logger.With().Str("component", "calendar").Logger(), store)
	engine := a.newEngine(cal)

	opts := api.RouterOptions{AllowedOrigins: a.cfg.Server.AllowedOrigins}
	if a.cfg.Metrics.Enabled {
		sink, err := metrics.NewPromSink(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		engine.Recorder = sink
		opts.Metrics = promhttp.Handler()
	}

	handler := api.NewHandler(engine, cal, store, a.logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler:      api.NewRouter(handler, opts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", a.cfg.Server.Port).Str("database", a.cfg.Database.Path).Bool("metrics", a.cfg.Metrics.Enabled).Msg("server starting")
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

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
