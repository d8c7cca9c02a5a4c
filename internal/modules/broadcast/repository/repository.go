package repository

import (
	"context"
	"errors"

	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
)

// Document keys. Each key holds one whole JSON document.
const (
	DocumentChannels = "channels"
	DocumentAd       = "ad"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore persists whole documents by key. Put replaces the stored
// document in a single step so a concurrent Get never sees a partial write.
// Get returns ErrDocumentNotFound when the key has never been written.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Close() error
}

// Repository defines the interface for broadcast configuration persistence.
// Loads never fail: a missing, unreadable or malformed document reads as its
// empty value so a first run or corrupted state never stops the bot.
type Repository interface {
	LoadChannels(ctx context.Context) []string
	SaveChannels(ctx context.Context, channels []string) error
	LoadAd(ctx context.Context) domain.Ad
	SaveAd(ctx context.Context, ad domain.Ad) error
}
