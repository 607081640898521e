package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/turing/internal/logging"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes the machine as a JSON API over HTTP: POST /simulate, GET /table, GET /graph, GET /healthz and GET /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.HTTP.Port, _ = cmd.Flags().GetString("port")
		}

		var audit *slog.Logger
		if enabled, _ := cmd.Flags().GetBool("audit"); enabled {
			audit = newAuditLogger(cmd.OutOrStdout())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		setup, err := newEngine(ctx, cfg, logger, audit)
		if err != nil {
			return err
		}
		defer setup.Close()

		opts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
		if setup.Registry != nil {
			opts = append(opts, httpAdapter.WithGatherer(setup.Registry))
		}

		srv := &http.Server{
			Addr:              ":" + cfg.HTTP.Port,
			Handler:           httpAdapter.NewHandler(setup.Engine, opts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting turing server", "addr", srv.Addr, "max_steps", setup.Engine.MaxSteps())
			serverErrors <- srv.ListenAndServe()
		}()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil

		case <-ctx.Done():
			logger.Info("Start shutdown")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("Turing server stopped gracefully")
			return nil
		}
	},
}

// newAuditLogger writes JSON audit records to w. Its level is independent of
// --log-level so every transition is recorded.
func newAuditLogger(w io.Writer) *slog.Logger {
	return slog.New(logging.NewJSONHandler(w, slog.LevelInfo))
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on (overrides http.port)")
	serveCmd.Flags().Bool("audit", false, "Write one JSON record per transition and halt to stdout")
}
