package application

import (
	"context"
	"fmt"

	"stocksummary-service/internal/domain"

	"golang.org/x/sync/errgroup"
)

// SnapshotService runs the quote-snapshot pipeline: fetch the quote and the
// requested rates, convert, build one row, append it.
type SnapshotService struct {
	quotes QuoteProvider
	rates  RateProvider
	repo   SummaryRepo
	idem   IdempotencyStore
	clock  Clock
}

type Option func(*SnapshotService)

func WithClock(c Clock) Option { return func(s *SnapshotService) { s.clock = c } }

func NewSnapshotService(quotes QuoteProvider, rates RateProvider, repo SummaryRepo, idem IdempotencyStore, opts ...Option) *SnapshotService {
	s := &SnapshotService{
		quotes: quotes,
		rates:  rates,
		repo:   repo,
		idem:   idem,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.idem == nil {
		s.idem = NoopIdempotency{}
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	return s
}

// Run executes one snapshot for the symbol and currency set. The quote fetch
// and each rate fetch run concurrently; conversion starts only once all of
// them have completed. There is no retry: the first failure aborts the run
// and nothing is persisted.
func (s *SnapshotService) Run(ctx context.Context, symbol string, currencies []domain.Currency) (domain.SummaryRow, error) {
	if symbol == "" {
		return domain.SummaryRow{}, fmt.Errorf("%w: empty symbol", domain.ErrInvalidArgument)
	}
	if len(currencies) == 0 {
		return domain.SummaryRow{}, fmt.Errorf("%w: no currencies", domain.ErrInvalidArgument)
	}

	key := "snapshot:" + symbol + ":" + s.clock.Now().UTC().Format("2006-01-02")
	ok, err := s.idem.TryReserve(ctx, key)
	if err != nil {
		return domain.SummaryRow{}, fmt.Errorf("reserve run: %w", err)
	}
	if !ok {
		return domain.SummaryRow{}, ErrDuplicateRun
	}

	var quote domain.Quote
	rates := make([]domain.Rate, len(currencies))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.quotes.Get(gctx, symbol)
		if err != nil {
			return fmt.Errorf("fetch quote %s: %w", symbol, err)
		}
		quote = q
		return nil
	})
	for i, cur := range currencies {
		i, cur := i, cur
		g.Go(func() error {
			r, err := s.rates.Get(gctx, cur)
			if err != nil {
				return fmt.Errorf("fetch rate usd/%s: %w", cur, err)
			}
			rates[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.SummaryRow{}, err
	}

	row, err := domain.BuildSummaryRow(quote, rates, s.clock.Now())
	if err != nil {
		return domain.SummaryRow{}, err
	}
	id, err := s.repo.Append(ctx, row)
	if err != nil {
		return domain.SummaryRow{}, fmt.Errorf("append row: %w", err)
	}
	row.ID = id
	return row, nil
}
