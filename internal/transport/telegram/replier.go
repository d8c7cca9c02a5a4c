package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Replier answers the admin, optionally attaching the menu keyboard.
type Replier struct {
	api  Sender
	menu [][]string
}

// NewReplier creates a replier; menu holds the keyboard rows
func NewReplier(api Sender, menu [][]string) *Replier {
	return &Replier{api: api, menu: menu}
}

func (r *Replier) Reply(ctx context.Context, chatID int64, text string, withMenu bool) error {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if withMenu {
		params.ReplyMarkup = r.keyboard()
	}

	if _, err := r.api.SendMessage(ctx, params); err != nil {
		return oops.With("chat_id", chatID, "context", "failed to send reply").Wrap(err)
	}
	return nil
}

func (r *Replier) keyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: lo.Map(r.menu, func(row []string, _ int) []models.KeyboardButton {
			return lo.Map(row, func(label string, _ int) models.KeyboardButton {
				return models.KeyboardButton{Text: label}
			})
		}),
	}
}
