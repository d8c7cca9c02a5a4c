package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/config"
	"github.com/samber/oops"
)

// NewBot creates the bot client with h as the default update handler.
// Handlers run one at a time in arrival order: a prompt must be recorded
// before the admin's answer to it is handled.
func NewBot(cfg *config.Config, h *Handler) (*bot.Bot, error) {
	opts := []bot.Option{
		bot.WithDefaultHandler(h.HandleUpdate),
		bot.WithNotAsyncHandlers(),
		bot.WithServerURL(cfg.TelegramAPIURL),
		bot.WithErrorsHandler(func(err error) {
			slog.Error("Telegram client error", "error", err)
		}),
	}
	if cfg.WebhookSecret != "" {
		opts = append(opts, bot.WithWebhookSecretToken(cfg.WebhookSecret))
	}
	if cfg.Debug() {
		opts = append(opts, bot.WithDebug())
	}

	b, err := bot.New(cfg.TelegramBotToken, opts...)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}
	return b, nil
}

// RegisterWebhook points Telegram at url.
func RegisterWebhook(ctx context.Context, api WebhookAPI, url, secret string) error {
	if _, err := api.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:         url,
		SecretToken: secret,
	}); err != nil {
		return oops.With("webhook_url", url, "context", "failed to set webhook").Wrap(err)
	}
	slog.Info("Webhook registered", "url", url)
	return nil
}

// DeleteWebhook removes the webhook registration on shutdown.
func DeleteWebhook(ctx context.Context, api WebhookAPI) error {
	if _, err := api.DeleteWebhook(ctx, &bot.DeleteWebhookParams{}); err != nil {
		return oops.With("context", "failed to delete webhook").Wrap(err)
	}
	slog.Info("Webhook deleted")
	return nil
}
