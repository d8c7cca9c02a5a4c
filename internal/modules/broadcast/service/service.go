package service

import (
	"context"
	"sync"

	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service handles broadcast configuration changes. Every mutation is a
// read-modify-write of the whole document through the repository.
type Service struct {
	repo    repository.Repository
	control *domain.Control
	mu      sync.Mutex
}

// New creates a new broadcast service
func New(repo repository.Repository, control *domain.Control) *Service {
	return &Service{
		repo:    repo,
		control: control,
	}
}

// Channels returns the stored channel list
func (s *Service) Channels(ctx context.Context) []string {
	return s.repo.LoadChannels(ctx)
}

// AddChannel appends channel verbatim. Duplicates are kept.
func (s *Service) AddChannel(ctx context.Context, channel string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	channels := append(s.repo.LoadChannels(ctx), channel)
	if err := s.repo.SaveChannels(ctx, channels); err != nil {
		return oops.With("channel", channel, "context", "failed to add channel").Wrap(err)
	}
	return nil
}

// RemoveChannel removes the first entry equal to channel. It reports false
// and leaves the list untouched when there is no such entry.
func (s *Service) RemoveChannel(ctx context.Context, channel string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	channels := s.repo.LoadChannels(ctx)
	idx := lo.IndexOf(channels, channel)
	if idx < 0 {
		return false, nil
	}

	channels = append(channels[:idx], channels[idx+1:]...)
	if err := s.repo.SaveChannels(ctx, channels); err != nil {
		return false, oops.With("channel", channel, "context", "failed to remove channel").Wrap(err)
	}
	return true, nil
}

// Ad returns the stored ad payload
func (s *Service) Ad(ctx context.Context) domain.Ad {
	return s.repo.LoadAd(ctx)
}

func (s *Service) SetAdText(ctx context.Context, text string) error {
	return s.updateAd(ctx, func(ad *domain.Ad) {
		ad.Text = text
	})
}

func (s *Service) SetAdPhoto(ctx context.Context, photoRef string) error {
	return s.updateAd(ctx, func(ad *domain.Ad) {
		ad.PhotoRef = photoRef
	})
}

func (s *Service) SetAdVideo(ctx context.Context, videoRef string) error {
	return s.updateAd(ctx, func(ad *domain.Ad) {
		ad.VideoRef = videoRef
	})
}

// DeleteAd overwrites the ad with an empty payload
func (s *Service) DeleteAd(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveAd(ctx, domain.Ad{}); err != nil {
		return oops.With("context", "failed to delete ad").Wrap(err)
	}
	return nil
}

func (s *Service) Pause() {
	s.control.Pause()
}

func (s *Service) Resume() {
	s.control.Resume()
}

func (s *Service) Paused() bool {
	return s.control.Paused()
}

func (s *Service) updateAd(ctx context.Context, update func(ad *domain.Ad)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad := s.repo.LoadAd(ctx)
	update(&ad)
	if err := s.repo.SaveAd(ctx, ad); err != nil {
		return oops.With("context", "failed to save ad").Wrap(err)
	}
	return nil
}
