package scheduler

import (
	"context"
	"errors"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/domain"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var _ application.Worker = (*SnapshotScheduler)(nil)

// SnapshotRunner is the slice of SnapshotService the scheduler needs.
type SnapshotRunner interface {
	Run(ctx context.Context, symbol string, currencies []domain.Currency) (domain.SummaryRow, error)
}

// SnapshotScheduler runs the snapshot pipeline on a cron spec. One snapshot
// runs immediately on start; Start blocks until the context is canceled.
type SnapshotScheduler struct {
	Runner     SnapshotRunner
	Symbol     string
	Currencies []domain.Currency
	Spec       string
	Log        *zap.Logger
}

func (s *SnapshotScheduler) Start(ctx context.Context) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}

	c := cron.New()
	if _, err := c.AddFunc(s.Spec, func() { s.runOnce(ctx, log) }); err != nil {
		log.Error("invalid cron spec", zap.String("spec", s.Spec), zap.Error(err))
		return
	}

	log.Info("snapshot_scheduler_started",
		zap.String("spec", s.Spec),
		zap.String("symbol", s.Symbol),
	)
	s.runOnce(ctx, log)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info("snapshot_scheduler_stopped")
}

func (s *SnapshotScheduler) runOnce(ctx context.Context, log *zap.Logger) {
	row, err := s.Runner.Run(ctx, s.Symbol, s.Currencies)
	switch {
	case errors.Is(err, application.ErrDuplicateRun):
		log.Info("snapshot_skipped_duplicate", zap.String("symbol", s.Symbol))
	case err != nil:
		log.Warn("snapshot_failed", zap.String("symbol", s.Symbol), zap.Error(err))
	default:
		log.Info("snapshot_done",
			zap.Int64("id", row.ID),
			zap.String("symbol", row.StockSymbol),
			zap.String("price_usd", row.PriceUSD.String()),
		)
	}
}
