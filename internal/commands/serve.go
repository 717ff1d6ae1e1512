package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/config"
	"github.com/payflow-dev/payflow/internal/logger"
	"github.com/payflow-dev/payflow/internal/messages"
	"github.com/payflow-dev/payflow/internal/server"
	"github.com/payflow-dev/payflow/internal/settle"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the payment-instructions HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "payflow.yaml", "configuration file")

	return cmd
}

func runServe(configPath string) error {
	// A local .env may supply environment overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cfg = config.Default()
	}
	if addr := os.Getenv("PAYFLOW_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Pretty)

	catalog := messages.Default()
	if cfg.Messages.Path != "" {
		catalog, err = messages.Load(cfg.Messages.Path)
		if err != nil {
			return err
		}
	}

	opts := server.Options{}
	if cfg.Audit.Enabled {
		opts.AuditDir = cfg.Audit.Dir
	}
	srv := server.New(settle.New(catalog), log, opts)

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
