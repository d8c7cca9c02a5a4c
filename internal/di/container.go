package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	adminService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/admin/service"
	broadcastDomain "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	broadcastRepo "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/repository"
	broadcastService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/service"
	feedService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/feed/service"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/config"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/locales"
	httpServer "github.com/reshetovitsme/telegram-ad-broadcaster/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/telegram-ad-broadcaster/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

const storageConnectTimeout = 10 * time.Second

// Setup initializes the dependency injection container. configPath may be
// empty to use the default config file lookup.
func Setup(configPath string) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Document Store
	do.Provide(injector, func(i do.Injector) (broadcastRepo.DocumentStore, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
		defer cancel()

		docs, err := broadcastRepo.Open(ctx, cfg)
		if err != nil {
			return nil, oops.With("storage_driver", cfg.StorageDriver, "context", "failed to open document store").Wrap(err)
		}
		return docs, nil
	})

	// Register Broadcast Repository
	do.Provide(injector, func(i do.Injector) (broadcastRepo.Repository, error) {
		docs := do.MustInvoke[broadcastRepo.DocumentStore](i)
		return broadcastRepo.New(docs), nil
	})

	// Register Broadcast Control
	do.Provide(injector, func(i do.Injector) (*broadcastDomain.Control, error) {
		return broadcastDomain.NewControl(), nil
	})

	// Register Locales
	do.Provide(injector, func(i do.Injector) (*locales.Catalog, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return locales.New(cfg.Language)
	})

	// Register Broadcast Service
	do.Provide(injector, func(i do.Injector) (*broadcastService.Service, error) {
		repo := do.MustInvoke[broadcastRepo.Repository](i)
		control := do.MustInvoke[*broadcastDomain.Control](i)
		return broadcastService.New(repo, control), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		repo := do.MustInvoke[broadcastRepo.Repository](i)
		return feedService.New(repo), nil
	})

	// Register Admin Sessions
	do.Provide(injector, func(i do.Injector) (*adminService.Sessions, error) {
		return adminService.NewSessions(), nil
	})

	// Register Telegram Handler (router is attached once the bot exists)
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		return telegramHandler.New(nil), nil
	})

	// Register Bot
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := do.MustInvoke[*telegramHandler.Handler](i)
		return telegramHandler.NewBot(cfg, handler)
	})

	// Register Replier
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Replier, error) {
		b := do.MustInvoke[*bot.Bot](i)
		catalog := do.MustInvoke[*locales.Catalog](i)
		return telegramHandler.NewReplier(b, adminService.Menu(catalog)), nil
	})

	// Register Deliverer
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Deliverer, error) {
		b := do.MustInvoke[*bot.Bot](i)
		return telegramHandler.NewDeliverer(b), nil
	})

	// Register Command Router and attach it to the Telegram handler
	do.Provide(injector, func(i do.Injector) (*adminService.Router, error) {
		cfg := do.MustInvoke[*config.Config](i)
		broadcast := do.MustInvoke[*broadcastService.Service](i)
		sessions := do.MustInvoke[*adminService.Sessions](i)
		replier := do.MustInvoke[*telegramHandler.Replier](i)
		catalog := do.MustInvoke[*locales.Catalog](i)
		handler := do.MustInvoke[*telegramHandler.Handler](i)

		router := adminService.New(cfg.AdminID, broadcast, sessions, replier, catalog)
		handler.SetRouter(router)
		return router, nil
	})

	// Register Scheduler
	do.Provide(injector, func(i do.Injector) (*broadcastService.Scheduler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[broadcastRepo.Repository](i)
		control := do.MustInvoke[*broadcastDomain.Control](i)
		deliverer := do.MustInvoke[*telegramHandler.Deliverer](i)

		schedule, err := cfg.Schedule()
		if err != nil {
			return nil, err
		}
		return broadcastService.NewScheduler(repo, control, deliverer, schedule, cfg.DeliveryTimeoutDuration()), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		broadcast := do.MustInvoke[*broadcastService.Service](i)
		feed := do.MustInvoke[*feedService.Service](i)

		server := httpServer.New(cfg, broadcast, feed)
		server.SetLogger(slog.Default())
		if cfg.WebhookEnabled() {
			b := do.MustInvoke[*bot.Bot](i)
			server.SetWebhookHandler(b.WebhookHandler())
		}
		return server, nil
	})

	return injector, nil
}

// Shutdown stops every service the container has built, in reverse
// dependency order. Services that were never invoked are left alone, so an
// early failure does not dial a store just to close it.
func Shutdown(injector do.Injector) error {
	report := injector.Shutdown()
	if report != nil && !report.Succeed {
		return oops.With("context", "failed to shut down services").Errorf("%v", report)
	}
	return nil
}
