package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/admin/domain"
	"github.com/samber/lo"
)

// Router is implemented by the admin command router
type Router interface {
	Handle(ctx context.Context, in domain.Inbound) error
}

// Handler handles Telegram bot interactions
type Handler struct {
	router Router
}

// New creates a new Telegram handler
func New(router Router) *Handler {
	return &Handler{router: router}
}

// SetRouter sets the router messages are dispatched to
func (h *Handler) SetRouter(router Router) {
	h.router = router
}

// HandleUpdate processes incoming updates. It is registered as the bot's
// default handler, so every message reaches the router.
func (h *Handler) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	in, ok := ToInbound(update.Message)
	if !ok {
		return
	}

	if h.router == nil {
		slog.Warn("Update received before router was set", "sender_id", in.SenderID)
		return
	}

	if err := h.router.Handle(ctx, in); err != nil {
		slog.Error("Error handling message", "sender_id", in.SenderID, "content_type", in.ContentType, "error", err)
	}
}

// ToInbound converts a Telegram message. Messages without a sender, such as
// channel posts, are rejected.
func ToInbound(msg *models.Message) (domain.Inbound, bool) {
	if msg == nil || msg.From == nil {
		return domain.Inbound{}, false
	}

	in := domain.Inbound{
		SenderID: msg.From.ID,
		ChatID:   msg.Chat.ID,
	}

	switch {
	case len(msg.Photo) > 0:
		in.ContentType = domain.ContentTypePhoto
		in.Text = msg.Caption
		in.Media = lo.Map(msg.Photo, func(photo models.PhotoSize, _ int) domain.MediaVariant {
			return domain.MediaVariant{Ref: photo.FileID, Width: photo.Width, Height: photo.Height}
		})
	case msg.Video != nil:
		in.ContentType = domain.ContentTypeVideo
		in.Text = msg.Caption
		in.Media = []domain.MediaVariant{{Ref: msg.Video.FileID, Width: msg.Video.Width, Height: msg.Video.Height}}
	case msg.Text != "":
		in.ContentType = domain.ContentTypeText
		in.Text = msg.Text
	default:
		in.ContentType = domain.ContentTypeOther
	}

	return in, true
}
