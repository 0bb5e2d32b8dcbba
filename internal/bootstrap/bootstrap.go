package bootstrap

import (
	"context"
	"fmt"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/config"
	"stocksummary-service/internal/infrastructure/httpx"
	"stocksummary-service/internal/infrastructure/logx"
	"stocksummary-service/internal/infrastructure/pg"
	"stocksummary-service/internal/infrastructure/provider"
	redisstore "stocksummary-service/internal/infrastructure/redis"

	"github.com/redis/go-redis/v9"
)

type Repos struct {
	Summaries application.SummaryRepo
	// Ping probes the underlying store; wired into /readyz.
	Ping func(ctx context.Context) error
}

type Services struct {
	Idem application.IdempotencyStore
}

// BuildRepos connects storage based on STORAGE ("pg" expected) and runs
// migrations.
func BuildRepos(ctx context.Context, cfg config.Config) (Repos, func(), error) {
	log := logx.L()

	switch cfg.Storage {
	case "pg":
		if cfg.DatabaseURL == "" {
			return Repos{}, func() {}, fmt.Errorf("DATABASE_URL is required for STORAGE=pg")
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return Repos{}, func() {}, err
		}
		if err := pg.RunMigrations(ctx, db); err != nil {
			db.Close()
			return Repos{}, func() {}, err
		}
		cleanup := func() {
			log.Info("closing pg")
			db.Close()
		}
		return Repos{Summaries: pg.NewSummaryRepo(db), Ping: db.Ping}, cleanup, nil
	default:
		return Repos{}, func() {}, fmt.Errorf("unsupported STORAGE=%q", cfg.Storage)
	}
}

// BuildProviders returns the quote and rate providers. PROVIDER=http selects
// the real upstreams; anything else yields fakes for local development.
func BuildProviders(cfg config.Config) (application.QuoteProvider, application.RateProvider) {
	switch cfg.Provider {
	case "http":
		client := httpx.New(cfg.RequestTimeout)
		quotes := &provider.AletheiaProvider{
			BaseURL: cfg.QuoteAPIBase,
			APIKey:  cfg.QuoteAPIKey,
			Client:  client,
		}
		rates := &provider.CurrencyAPIProvider{
			BaseURL: cfg.RateAPIBase,
			Client:  client,
		}
		return quotes, rates
	default:
		return provider.NewFakeQuotes(305.22), provider.NewFakeRates(0.92)
	}
}

// BuildRedis builds the run-deduplication store when IDEMPOTENCY_BACKEND=redis;
// otherwise a Noop store that never skips.
func BuildRedis(cfg config.Config) (Services, func(), error) {
	if cfg.IdempotencyBackend != "redis" {
		return Services{Idem: application.NoopIdempotency{}}, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := redisstore.New(rdb, cfg.RedisTTL)
	cleanup := func() { _ = rdb.Close() }
	return Services{Idem: store}, cleanup, nil
}
