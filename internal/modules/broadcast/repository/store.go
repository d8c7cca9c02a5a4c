package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	"github.com/samber/oops"
)

// Store implements Repository on top of any DocumentStore.
type Store struct {
	docs DocumentStore
}

// New creates a repository backed by docs
func New(docs DocumentStore) *Store {
	return &Store{docs: docs}
}

func (s *Store) LoadChannels(ctx context.Context) []string {
	var channels []string
	if !s.load(ctx, DocumentChannels, &channels) || channels == nil {
		return []string{}
	}
	return channels
}

func (s *Store) SaveChannels(ctx context.Context, channels []string) error {
	if channels == nil {
		channels = []string{}
	}
	return s.save(ctx, DocumentChannels, channels)
}

func (s *Store) LoadAd(ctx context.Context) domain.Ad {
	var ad domain.Ad
	if !s.load(ctx, DocumentAd, &ad) {
		return domain.Ad{}
	}
	return ad
}

func (s *Store) SaveAd(ctx context.Context, ad domain.Ad) error {
	return s.save(ctx, DocumentAd, ad)
}

func (s *Store) Close() error {
	return s.docs.Close()
}

func (s *Store) load(ctx context.Context, key string, v any) bool {
	data, err := s.docs.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			slog.Warn("Failed to read document, using empty value", "document", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("Malformed document, using empty value", "document", key, "error", err)
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return oops.With("document", key, "context", "failed to marshal document").Wrap(err)
	}

	if err := s.docs.Put(ctx, key, data); err != nil {
		return oops.With("document", key, "context", "failed to write document").Wrap(err)
	}
	return nil
}
