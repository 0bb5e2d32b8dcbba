package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/bootstrap"
	"stocksummary-service/internal/config"
	"stocksummary-service/internal/domain"
	"stocksummary-service/internal/infrastructure/logx"
	"stocksummary-service/internal/infrastructure/scheduler"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	currencies, err := domain.ParseCurrencies(cfg.Currencies)
	if err != nil {
		logger.Fatal("parse currencies", zap.Error(err))
	}

	repos, cleanup, err := bootstrap.BuildRepos(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap repos", zap.Error(err))
	}
	defer cleanup()

	services, closeRedis, err := bootstrap.BuildRedis(cfg)
	if err != nil {
		logger.Fatal("bootstrap redis", zap.Error(err))
	}
	defer closeRedis()

	quotes, rates := bootstrap.BuildProviders(cfg)
	svc := application.NewSnapshotService(quotes, rates, repos.Summaries, services.Idem)

	// With no cron spec configured the binary takes one snapshot and exits;
	// otherwise it keeps running on the schedule until signalled.
	if cfg.SnapshotCron == "" {
		runOnce(ctx, logger, svc, cfg.StockSymbol, currencies)
		return
	}

	sched := &scheduler.SnapshotScheduler{
		Runner:     svc,
		Symbol:     cfg.StockSymbol,
		Currencies: currencies,
		Spec:       cfg.SnapshotCron,
		Log:        logger,
	}
	sched.Start(ctx)
	logger.Info("scheduler stopped")
}

func runOnce(ctx context.Context, logger *zap.Logger, svc *application.SnapshotService, symbol string, currencies []domain.Currency) {
	row, err := svc.Run(ctx, symbol, currencies)
	switch {
	case errors.Is(err, application.ErrDuplicateRun):
		logger.Info("snapshot already taken today", zap.String("symbol", symbol))
	case err != nil:
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	default:
		logger.Info("snapshot stored",
			zap.Int64("id", row.ID),
			zap.String("symbol", row.StockSymbol),
			zap.String("price_usd", row.PriceUSD.String()))
	}
}
