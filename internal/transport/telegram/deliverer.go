package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	"github.com/samber/oops"
)

// Deliverer posts the ad to a channel. A photo takes priority over a video;
// the text becomes the media caption or is sent alone.
type Deliverer struct {
	api Sender
}

func NewDeliverer(api Sender) *Deliverer {
	return &Deliverer{api: api}
}

func (d *Deliverer) Deliver(ctx context.Context, channelID string, ad domain.Ad) error {
	var err error

	switch ad.Kind() {
	case domain.AdKindPhoto:
		_, err = d.api.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:    channelID,
			Photo:     &models.InputFileString{Data: ad.PhotoRef},
			Caption:   ad.Text,
			ParseMode: models.ParseModeHTML,
		})
	case domain.AdKindVideo:
		_, err = d.api.SendVideo(ctx, &bot.SendVideoParams{
			ChatID:    channelID,
			Video:     &models.InputFileString{Data: ad.VideoRef},
			Caption:   ad.Text,
			ParseMode: models.ParseModeHTML,
		})
	case domain.AdKindText:
		_, err = d.api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    channelID,
			Text:      ad.Text,
			ParseMode: models.ParseModeHTML,
		})
	default:
		return nil
	}

	if err != nil {
		return oops.With("channel", channelID, "kind", ad.Kind()).Wrap(err)
	}
	return nil
}
