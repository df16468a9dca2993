package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipe-share/backend/config"
	"github.com/pageza/recipe-share/backend/internal/api"
	"github.com/pageza/recipe-share/backend/internal/database"
	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/metrics"
	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/remote"
	"github.com/pageza/recipe-share/backend/internal/repository"
	"github.com/pageza/recipe-share/backend/internal/server"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger is not configured yet
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Environment != config.Production,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	repo, store, err := openRepository(ctx, cfg, log, m)
	if err != nil {
		return err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		// validation requires JWT_SECRET in production
		secret = uuid.NewString()
		log.Warn("JWT_SECRET not set, tokens will not survive a restart")
	}

	deps := api.Deps{
		Repo:        repo,
		Auth:        service.NewTokenService(secret),
		Metrics:     m,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		DevLogin:    cfg.Environment != config.Production,
	}
	if cfg.RemoteAPIURL != "" {
		deps.Remote = remote.NewClient(cfg.RemoteAPIURL, remote.WithLogger(log), remote.WithMetrics(m))
	}

	var limiterClient *redis.Client
	if cfg.RedisConfigured() && cfg.LikeRateLimit > 0 {
		limiterClient, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Warn("like rate limiting disabled", logger.Error(err))
		} else {
			deps.LikeLimiter = middleware.NewLikeRateLimiter(limiterClient, cfg.LikeRateLimit, log)
		}
	}

	srv := server.New(cfg.Addr(), api.NewRouter(deps), repo, log)
	if limiterClient != nil {
		srv.OnShutdown(limiterClient.Close)
	}
	srv.OnShutdown(store.Close)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// openRepository reads the seed file before opening the store so a bad seed
// file never leaves a connection behind
func openRepository(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Metrics) (*repository.RecipeRepository, storage.Store, error) {
	opts := []repository.Option{repository.WithLogger(log), repository.WithMetrics(m)}
	if cfg.SeedFile != "" {
		seed, err := repository.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, repository.WithSeed(seed))
	}

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return repository.New(ctx, store, opts...), store, nil
}
