package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/metrics"
	"github.com/pageza/recipe-share/backend/internal/storage"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestOpenRepositoryWithSeedFile(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		StoreBackend: config.BackendRedis,
		StoreKey:     "recipes",
		RedisURL:     "redis://" + mr.Addr(),
		SeedFile:     writeSeed(t, "recipes:\n  - id: a\n    title: Toast\n    difficulty: Easy\n"),
	}

	repo, store, err := openRepository(context.Background(), cfg, logger.NewNop(), metrics.New(prometheus.NewRegistry()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.IsType(t, &storage.RedisStore{}, store)
	assert.Equal(t, 1, repo.Len())
}

func TestOpenRepositoryBadSeedFileOpensNoStore(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		StoreBackend: config.BackendRedis,
		StoreKey:     "recipes",
		RedisURL:     "redis://" + mr.Addr(),
		SeedFile:     writeSeed(t, "recipes: [unterminated"),
	}

	repo, store, err := openRepository(context.Background(), cfg, logger.NewNop(), nil)
	require.Error(t, err)
	assert.Nil(t, repo)
	assert.Nil(t, store)
	assert.Equal(t, 0, mr.TotalConnectionCount(), "no redis connection is made")
}
