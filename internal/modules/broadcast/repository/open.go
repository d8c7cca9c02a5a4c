package repository

import (
	"context"
	"path/filepath"

	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/config"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/errors"
	"github.com/samber/oops"
)

// Open returns the document store selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (DocumentStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverFile, "":
		return NewFileStorage(cfg.StoragePath)
	case config.StorageDriverSqlite:
		return NewSQLiteStorage(ctx, filepath.Join(cfg.StoragePath, "broadcast.db"))
	case config.StorageDriverRedis:
		return NewRedisStorage(ctx, cfg.RedisURL, cfg.RedisPrefix)
	case config.StorageDriverMongo:
		return NewMongoStorage(ctx, cfg.MongoDBURI, cfg.MongoDBDatabase)
	default:
		return nil, oops.With("storage_driver", cfg.StorageDriver).Wrap(errors.ErrUnsupportedStore)
	}
}
