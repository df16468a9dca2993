package storage

import (
	"context"
	"fmt"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/database"
	"github.com/pageza/recipe-share/backend/internal/logger"
)

// Open builds the snapshot store selected by cfg.StoreBackend
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		log.Warn("using in-memory recipe store, data is lost on restart")
		return NewMemoryStore(), nil

	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, cfg.StoreKey), nil

	case config.BackendSQL:
		db, err := database.Open(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		store, err := NewSQLStore(db, cfg.StoreKey)
		if err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return nil, err
		}
		return store, nil

	case config.BackendS3:
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3Store(s3cfg.Client, s3cfg.BucketName, cfg.StoreKey), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
