package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	adminDomain "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/admin/domain"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	if msg, ok := args.Get(0).(*models.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSender) SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	if msg, ok := args.Get(0).(*models.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSender) SendVideo(ctx context.Context, params *bot.SendVideoParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	if msg, ok := args.Get(0).(*models.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRouter is a mock implementation of Router
type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) Handle(ctx context.Context, in adminDomain.Inbound) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func TestToInbound(t *testing.T) {
	t.Run("nil message", func(t *testing.T) {
		_, ok := ToInbound(nil)
		assert.False(t, ok)
	})

	t.Run("channel post without sender", func(t *testing.T) {
		_, ok := ToInbound(&models.Message{Text: "hi", Chat: models.Chat{ID: -100}})
		assert.False(t, ok)
	})

	t.Run("text", func(t *testing.T) {
		in, ok := ToInbound(&models.Message{
			From: &models.User{ID: 42},
			Chat: models.Chat{ID: 1042},
			Text: "@news",
		})
		require.True(t, ok)
		assert.Equal(t, adminDomain.Inbound{
			SenderID:    42,
			ChatID:      1042,
			Text:        "@news",
			ContentType: adminDomain.ContentTypeText,
		}, in)
	})

	t.Run("photo picks largest variant", func(t *testing.T) {
		in, ok := ToInbound(&models.Message{
			From:    &models.User{ID: 42},
			Chat:    models.Chat{ID: 42},
			Caption: "caption",
			Photo: []models.PhotoSize{
				{FileID: "s", Width: 90, Height: 60},
				{FileID: "l", Width: 1280, Height: 853},
				{FileID: "m", Width: 320, Height: 213},
			},
		})
		require.True(t, ok)
		assert.Equal(t, adminDomain.ContentTypePhoto, in.ContentType)
		assert.Equal(t, "caption", in.Text)
		assert.Len(t, in.Media, 3)
		assert.Equal(t, "l", in.MediaRef())
	})

	t.Run("video", func(t *testing.T) {
		in, ok := ToInbound(&models.Message{
			From:  &models.User{ID: 42},
			Chat:  models.Chat{ID: 42},
			Video: &models.Video{FileID: "vid", Width: 640, Height: 360},
		})
		require.True(t, ok)
		assert.Equal(t, adminDomain.ContentTypeVideo, in.ContentType)
		assert.Equal(t, "vid", in.MediaRef())
	})

	t.Run("sticker", func(t *testing.T) {
		in, ok := ToInbound(&models.Message{
			From:    &models.User{ID: 42},
			Chat:    models.Chat{ID: 42},
			Sticker: &models.Sticker{FileID: "st"},
		})
		require.True(t, ok)
		assert.Equal(t, adminDomain.ContentTypeOther, in.ContentType)
		assert.Empty(t, in.MediaRef())
	})
}

func TestHandler_HandleUpdate(t *testing.T) {
	router := new(MockRouter)
	router.On("Handle", mock.Anything, mock.MatchedBy(func(in adminDomain.Inbound) bool {
		return in.SenderID == 42 && in.Text == "/start"
	})).Return(errors.New("send failed")).Once()

	h := New(nil)
	// No router yet: the update is dropped
	h.HandleUpdate(context.Background(), nil, &models.Update{Message: &models.Message{From: &models.User{ID: 42}, Text: "/start"}})

	h.SetRouter(router)
	h.HandleUpdate(context.Background(), nil, &models.Update{Message: &models.Message{From: &models.User{ID: 42}, Text: "/start"}})
	h.HandleUpdate(context.Background(), nil, &models.Update{})

	router.AssertExpectations(t)
}

func TestDeliverer_PhotoTakesPriority(t *testing.T) {
	sender := new(MockSender)
	sender.On("SendPhoto", mock.Anything, mock.MatchedBy(func(p *bot.SendPhotoParams) bool {
		file, ok := p.Photo.(*models.InputFileString)
		return ok && file.Data == "photo-1" &&
			p.ChatID == "@news" &&
			p.Caption == "<b>Sale</b>" &&
			p.ParseMode == models.ParseModeHTML
	})).Return(&models.Message{}, nil).Once()

	err := NewDeliverer(sender).Deliver(context.Background(), "@news", domain.Ad{Text: "<b>Sale</b>", PhotoRef: "photo-1", VideoRef: "video-1"})

	require.NoError(t, err)
	sender.AssertExpectations(t)
	sender.AssertNotCalled(t, "SendVideo", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestDeliverer_Video(t *testing.T) {
	sender := new(MockSender)
	sender.On("SendVideo", mock.Anything, mock.MatchedBy(func(p *bot.SendVideoParams) bool {
		file, ok := p.Video.(*models.InputFileString)
		return ok && file.Data == "video-1" && p.Caption == ""
	})).Return(&models.Message{}, nil).Once()

	require.NoError(t, NewDeliverer(sender).Deliver(context.Background(), "@news", domain.Ad{VideoRef: "video-1"}))
	sender.AssertExpectations(t)
}

func TestDeliverer_TextAndErrors(t *testing.T) {
	sender := new(MockSender)
	sender.On("SendMessage", mock.Anything, mock.MatchedBy(func(p *bot.SendMessageParams) bool {
		return p.ChatID == "@news" && p.Text == "hello" && p.ParseMode == models.ParseModeHTML
	})).Return(nil, errors.New("Forbidden")).Once()

	d := NewDeliverer(sender)
	err := d.Deliver(context.Background(), "@news", domain.Ad{Text: "hello"})
	assert.ErrorContains(t, err, "Forbidden")

	// Nothing to send is not an error
	assert.NoError(t, d.Deliver(context.Background(), "@news", domain.Ad{}))
	sender.AssertExpectations(t)
}

func TestReplier(t *testing.T) {
	menu := [][]string{{"a", "b"}, {"c"}}

	sender := new(MockSender)
	sender.On("SendMessage", mock.Anything, mock.MatchedBy(func(p *bot.SendMessageParams) bool {
		kb, ok := p.ReplyMarkup.(*models.ReplyKeyboardMarkup)
		return ok && kb.ResizeKeyboard &&
			len(kb.Keyboard) == 2 &&
			kb.Keyboard[0][1].Text == "b" &&
			kb.Keyboard[1][0].Text == "c" &&
			p.Text == "welcome" &&
			p.ParseMode == ""
	})).Return(&models.Message{}, nil).Once()
	sender.On("SendMessage", mock.Anything, mock.MatchedBy(func(p *bot.SendMessageParams) bool {
		return p.ReplyMarkup == nil && p.Text == "saved"
	})).Return(&models.Message{}, nil).Once()

	r := NewReplier(sender, menu)
	require.NoError(t, r.Reply(context.Background(), 42, "welcome", true))
	require.NoError(t, r.Reply(context.Background(), 42, "saved", false))
	sender.AssertExpectations(t)
}
