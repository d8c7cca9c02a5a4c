package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/getsentry/sentry-go"
	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/di"
	adminService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/admin/service"
	broadcastService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/service"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/config"
	httpServer "github.com/reshetovitsme/telegram-ad-broadcaster/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/telegram-ad-broadcaster/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot, the broadcast scheduler and the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

// setupLogging sends everything at level to stdout as text and errors to
// stderr as JSON.
func setupLogging(level slog.Leveler) {
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	slog.SetDefault(slog.New(slogmulti.Fanout(textHandler, jsonHandler)))
}

func runServe(parent context.Context, configPath string) error {
	level := new(slog.LevelVar)
	setupLogging(level)

	injector, err := di.Setup(configPath)
	if err != nil {
		return oops.With("context", "failed to setup dependency injection").Wrap(err)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return err
	}
	if cfg.Debug() {
		level.Set(slog.LevelDebug)
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: string(cfg.AppEnv),
			Debug:       cfg.Debug(),
		}); err != nil {
			return oops.With("context", "sentry init").Wrap(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Building the router attaches it to the update handler
	if _, err := do.Invoke[*adminService.Router](injector); err != nil {
		return err
	}
	b, err := do.Invoke[*bot.Bot](injector)
	if err != nil {
		return err
	}
	scheduler, err := do.Invoke[*broadcastService.Scheduler](injector)
	if err != nil {
		return err
	}
	server, err := do.Invoke[*httpServer.Server](injector)
	if err != nil {
		return err
	}

	if cfg.WebhookEnabled() {
		if err := telegramHandler.RegisterWebhook(ctx, b, cfg.WebhookURL, cfg.WebhookSecret); err != nil {
			return err
		}
		go b.StartWebhook(ctx)
	} else {
		// Long polling does not work while a webhook is registered
		if err := telegramHandler.DeleteWebhook(ctx, b); err != nil {
			slog.Warn("Failed to clear webhook before polling", "error", err)
		}
		go b.Start(ctx)
	}

	scheduler.Start(ctx)

	go func() {
		if err := server.Start(); err != nil {
			slog.Error("HTTP server failed", "error", err)
			cancel()
		}
	}()

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		slog.Warn("Failed to notify systemd", "error", err)
	}

	slog.Info("Application started",
		"port", cfg.HTTPPort,
		"admin_id", cfg.AdminID,
		"storage_driver", cfg.StorageDriver,
		"webhook", cfg.WebhookEnabled(),
	)

	<-ctx.Done()
	slog.Info("Shutting down...")
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if cfg.WebhookEnabled() {
		if err := telegramHandler.DeleteWebhook(shutdownCtx, b); err != nil {
			slog.Error("Failed to delete webhook", "error", err)
		}
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down HTTP server", "error", err)
	}
	scheduler.Stop()

	return nil
}
