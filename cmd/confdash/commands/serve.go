package commands

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/confdash/internal/config"
	"github.com/JonMunkholm/confdash/internal/core"
	"github.com/JonMunkholm/confdash/internal/logging"
	"github.com/JonMunkholm/confdash/internal/source"
	"github.com/JonMunkholm/confdash/internal/web"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the reference tables and serve the dashboard",
		Long: `Load both reference tables from their configured sources, derive the
filter facets, and serve the dashboard until interrupted. The loaded
snapshot is immutable; restart to pick up new data.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"addr", cfg.Server.Addr(),
		"conference_start", cfg.Data.ConferenceStart,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	start, err := cfg.Data.StartDate()
	if err != nil {
		return err
	}

	snap, err := source.Load(context.Background(), source.Config{
		Sessions: cfg.Data.Sessions,
		Talks:    cfg.Data.Talks,
		Timeout:  cfg.Data.ConnectTimeout,
	})
	if err != nil {
		slog.Error("failed to load reference tables", "error", err)
		return err
	}

	slog.Info("snapshot loaded",
		"snapshot_id", snap.ID,
		"sessions", len(snap.Sessions),
		"sessions_kind", snap.SessionsKind,
		"talks", len(snap.Talks),
		"talks_kind", snap.TalksKind,
	)

	service, err := core.NewService(snap, start)
	if err != nil {
		return err
	}

	server, err := web.NewServer(service, cfg)
	if err != nil {
		return err
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		return err
	}
	slog.Info("server stopped")
	return nil
}
