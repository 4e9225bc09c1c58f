package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/azubair/partscan/internal/api"
	"github.com/azubair/partscan/internal/config"
	"github.com/azubair/partscan/internal/database"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout is how long in-flight requests may take to finish
// after a shutdown signal before the server is forcibly closed.
const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the spare-parts inventory REST API",
		Long: `Serve starts an HTTP server exposing the spare-parts inventory API.

Endpoints:
  GET    /health                 Liveness check
  GET    /api/spare-parts        List parts (filters: model, min_price, max_price)
  POST   /api/spare-parts        Create a part
  GET    /api/spare-parts/{id}   Get a part
  PUT    /api/spare-parts/{id}   Update a part
  DELETE /api/spare-parts/{id}   Delete a part
  GET    /api/car-models         List car models
  POST   /api/car-models         Create a car model

Examples:
  # Serve on the default address
  partscan serve

  # Serve on a custom address with a custom database location
  partscan serve -a :9000 --db-dir /var/lib/partscan`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultListenAddr,
		"Address for the API server to listen on")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory for the SQLite database")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, stopping server...")
		cancel()
	}()

	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close database", slog.String("error", closeErr.Error()))
		}
	}()

	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(db, api.WithLogger(logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting inventory API server",
		slog.String("addr", addr),
		slog.String("database", db.Path()))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
