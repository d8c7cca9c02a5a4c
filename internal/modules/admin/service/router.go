package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/admin/domain"
	broadcastDomain "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	broadcastService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/service"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/locales"
)

const (
	StartCommand  = "/start"
	StatusCommand = "/status"
)

// Replier sends a message back to the admin chat. withMenu attaches the
// reply keyboard.
type Replier interface {
	Reply(ctx context.Context, chatID int64, text string, withMenu bool) error
}

type handlerFunc func(ctx context.Context, in domain.Inbound) error

// Router dispatches admin messages: menu commands act immediately or open a
// prompt, anything else is consumed as the answer to the pending prompt.
type Router struct {
	adminID   int64
	broadcast *broadcastService.Service
	sessions  *Sessions
	replier   Replier
	catalog   *locales.Catalog
	commands  map[string]handlerFunc
}

// New creates a router that only obeys adminID
func New(adminID int64, broadcast *broadcastService.Service, sessions *Sessions, replier Replier, catalog *locales.Catalog) *Router {
	r := &Router{
		adminID:   adminID,
		broadcast: broadcast,
		sessions:  sessions,
		replier:   replier,
		catalog:   catalog,
	}

	t := catalog.Text
	r.commands = map[string]handlerFunc{
		StatusCommand:               r.handleStatus,
		t(locales.BtnStatus):        r.handleStatus,
		t(locales.BtnAddChannel):    r.prompt(domain.StateAwaitingChannelAdd, locales.MsgAskChannel),
		t(locales.BtnRemoveChannel): r.prompt(domain.StateAwaitingChannelRemove, locales.MsgAskRemoveChannel),
		t(locales.BtnAdText):        r.prompt(domain.StateAwaitingAdText, locales.MsgAskAdText),
		t(locales.BtnAdMedia):       r.prompt(domain.StateAwaitingAdMedia, locales.MsgAskAdMedia),
		t(locales.BtnDeleteAd):      r.handleDeleteAd,
		t(locales.BtnPause):         r.handlePause,
		t(locales.BtnResume):        r.handleResume,
	}

	return r
}

// Handle processes one inbound message. /start answers everyone; every other
// message from a non-admin is dropped without a reply.
func (r *Router) Handle(ctx context.Context, in domain.Inbound) error {
	if in.ContentType == domain.ContentTypeText && in.Text == StartCommand {
		return r.handleStart(ctx, in)
	}

	if in.SenderID != r.adminID {
		slog.Debug("Ignoring message from non-admin", "sender_id", in.SenderID)
		return nil
	}

	if in.ContentType == domain.ContentTypeText {
		if handler, ok := r.commands[in.Text]; ok {
			return handler(ctx, in)
		}
	}

	return r.handlePending(ctx, in)
}

func (r *Router) handleStart(ctx context.Context, in domain.Inbound) error {
	if in.SenderID != r.adminID {
		return r.reply(ctx, in, locales.MsgNotAdmin, false)
	}

	r.sessions.Clear(in.SenderID)
	return r.reply(ctx, in, locales.MsgWelcome, true)
}

// prompt opens a field-collection state. A prompt still pending is dropped.
func (r *Router) prompt(state domain.State, message string) handlerFunc {
	return func(ctx context.Context, in domain.Inbound) error {
		r.sessions.Begin(in.SenderID, state)
		return r.reply(ctx, in, message, false)
	}
}

func (r *Router) handleDeleteAd(ctx context.Context, in domain.Inbound) error {
	r.sessions.Clear(in.SenderID)
	if err := r.broadcast.DeleteAd(ctx); err != nil {
		return r.fail(ctx, in, err)
	}
	return r.reply(ctx, in, locales.MsgAdDeleted, false)
}

func (r *Router) handlePause(ctx context.Context, in domain.Inbound) error {
	r.sessions.Clear(in.SenderID)
	r.broadcast.Pause()
	slog.Info("Broadcast paused", "admin_id", in.SenderID)
	return r.reply(ctx, in, locales.MsgPaused, false)
}

func (r *Router) handleResume(ctx context.Context, in domain.Inbound) error {
	r.sessions.Clear(in.SenderID)
	r.broadcast.Resume()
	slog.Info("Broadcast resumed", "admin_id", in.SenderID)
	return r.reply(ctx, in, locales.MsgResumed, false)
}

func (r *Router) handleStatus(ctx context.Context, in domain.Inbound) error {
	r.sessions.Clear(in.SenderID)

	state := r.catalog.Text(locales.MsgStateRunning)
	if r.broadcast.Paused() {
		state = r.catalog.Text(locales.MsgStatePaused)
	}

	channels := r.broadcast.Channels(ctx)
	list := r.catalog.Text(locales.MsgNoChannels)
	if len(channels) > 0 {
		list = strings.Join(channels, "\n")
	}

	text := r.catalog.Format(locales.MsgStatus, map[string]any{
		"State":    state,
		"Count":    len(channels),
		"Channels": list,
		"Ad":       r.adSummary(r.broadcast.Ad(ctx)),
	})
	return r.replier.Reply(ctx, in.ChatID, text, true)
}

func (r *Router) adSummary(ad broadcastDomain.Ad) string {
	var parts []string
	if ad.Text != "" {
		parts = append(parts, r.catalog.Text(locales.MsgAdText))
	}
	if ad.PhotoRef != "" {
		parts = append(parts, r.catalog.Text(locales.MsgAdPhoto))
	}
	if ad.VideoRef != "" {
		parts = append(parts, r.catalog.Text(locales.MsgAdVideo))
	}
	if len(parts) == 0 {
		return r.catalog.Text(locales.MsgAdNone)
	}
	summary := strings.Join(parts, " + ")
	if ad.CheckMarkup() != nil {
		summary += " " + r.catalog.Text(locales.MsgAdInvalidMarkup)
	}
	return summary
}

// handlePending consumes in as the value of the admin's pending field.
// Content of the wrong type leaves the prompt open and gets no reply.
func (r *Router) handlePending(ctx context.Context, in domain.Inbound) error {
	switch r.sessions.Pending(in.SenderID) {
	case domain.StateAwaitingChannelAdd:
		if in.ContentType != domain.ContentTypeText {
			return nil
		}
		r.sessions.Clear(in.SenderID)
		if err := r.broadcast.AddChannel(ctx, in.Text); err != nil {
			return r.fail(ctx, in, err)
		}
		slog.Info("Channel added", "channel", in.Text)
		return r.reply(ctx, in, locales.MsgChannelAdded, false)

	case domain.StateAwaitingChannelRemove:
		if in.ContentType != domain.ContentTypeText {
			return nil
		}
		r.sessions.Clear(in.SenderID)
		removed, err := r.broadcast.RemoveChannel(ctx, in.Text)
		if err != nil {
			return r.fail(ctx, in, err)
		}
		if !removed {
			return r.reply(ctx, in, locales.MsgChannelNotFound, false)
		}
		slog.Info("Channel removed", "channel", in.Text)
		return r.reply(ctx, in, locales.MsgChannelRemoved, false)

	case domain.StateAwaitingAdText:
		if in.ContentType != domain.ContentTypeText {
			return nil
		}
		r.sessions.Clear(in.SenderID)
		if err := r.broadcast.SetAdText(ctx, in.Text); err != nil {
			return r.fail(ctx, in, err)
		}
		// Deliveries use HTML parse mode; the text is kept as sent but flagged
		if err := (broadcastDomain.Ad{Text: in.Text}).CheckMarkup(); err != nil {
			slog.Warn("Ad text is not valid HTML", "error", err)
			text := r.catalog.Format(locales.MsgAdSavedInvalidMarkup, map[string]any{"Reason": err.Error()})
			return r.replier.Reply(ctx, in.ChatID, text, false)
		}
		return r.reply(ctx, in, locales.MsgAdSaved, false)

	case domain.StateAwaitingAdMedia:
		ref := in.MediaRef()
		if ref == "" {
			return nil
		}

		var err error
		switch in.ContentType {
		case domain.ContentTypePhoto:
			err = r.broadcast.SetAdPhoto(ctx, ref)
		case domain.ContentTypeVideo:
			err = r.broadcast.SetAdVideo(ctx, ref)
		default:
			return nil
		}

		r.sessions.Clear(in.SenderID)
		if err != nil {
			return r.fail(ctx, in, err)
		}
		return r.reply(ctx, in, locales.MsgMediaSaved, false)

	default:
		return nil
	}
}

func (r *Router) fail(ctx context.Context, in domain.Inbound, err error) error {
	if replyErr := r.reply(ctx, in, locales.MsgSaveFailed, false); replyErr != nil {
		slog.Error("Failed to send failure reply", "chat_id", in.ChatID, "error", replyErr)
	}
	return err
}

func (r *Router) reply(ctx context.Context, in domain.Inbound, message string, withMenu bool) error {
	return r.replier.Reply(ctx, in.ChatID, r.catalog.Text(message), withMenu)
}
