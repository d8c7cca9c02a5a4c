package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/repository"
)

// Service renders the current ad as an RSS feed so it can be previewed
// outside Telegram.
type Service struct {
	repo repository.Repository
	now  func() time.Time
}

// New creates a new feed service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Generate builds a feed holding the current ad as its only item. The feed
// has no items when no ad is configured.
func (s *Service) Generate(ctx context.Context, baseURL string) *feeds.Feed {
	channels := s.repo.LoadChannels(ctx)
	ad := s.repo.LoadAd(ctx)
	now := s.now()

	feed := &feeds.Feed{
		Title:       "Ad broadcast",
		Link:        &feeds.Link{Href: baseURL + "/feed"},
		Description: fmt.Sprintf("Current ad broadcast to %d channel(s): %s", len(channels), strings.Join(channels, ", ")),
		Created:     now,
		Updated:     now,
	}

	if ad.IsEmpty() {
		return feed
	}

	feed.Items = []*feeds.Item{adToFeedItem(ad, baseURL, now)}
	return feed
}

func adToFeedItem(ad domain.Ad, baseURL string, now time.Time) *feeds.Item {
	title := truncate(ad.Text, 100)
	if title == "" {
		title = fmt.Sprintf("%s ad", ad.Kind())
	}

	content := fmt.Sprintf("<p>%s</p>", html.EscapeString(ad.Text))
	switch ad.Kind() {
	case domain.AdKindPhoto:
		content += fmt.Sprintf("<p><strong>Photo:</strong> %s</p>", html.EscapeString(ad.PhotoRef))
	case domain.AdKindVideo:
		content += fmt.Sprintf("<p><strong>Video:</strong> %s</p>", html.EscapeString(ad.VideoRef))
	}

	return &feeds.Item{
		Title:       title,
		Link:        &feeds.Link{Href: baseURL + "/feed"},
		Description: ad.Text,
		Content:     content,
		Created:     now,
		Id:          fmt.Sprintf("ad-%s-%s%s", ad.Kind(), ad.PhotoRef, ad.VideoRef),
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
