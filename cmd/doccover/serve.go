package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/doccover/internal/api"
	"github.com/dgallion1/doccover/internal/config"
	"github.com/dgallion1/doccover/internal/pipeline"
)

func newServeCmd() *cobra.Command {
	var (
		configFile string
		port       string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the coverage HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if configFile != "" {
				if err := config.LoadFile(configFile, &cfg); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $PORT or 8090)")
	return cmd
}

func serve(cfg config.Config) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	analyzer := pipeline.NewAnalyzer(cfg.WorkerCount, log)
	srv, err := api.NewServer(analyzer, log, cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting doccover", "port", cfg.Port, "workers", cfg.WorkerCount, "auth", cfg.APIKey != "")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}
