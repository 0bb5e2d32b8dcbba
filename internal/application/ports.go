package application

import (
	"context"
	"time"

	"stocksummary-service/internal/domain"
)

type SummaryRepo interface {
	// Append inserts the row and returns its auto-assigned id.
	Append(ctx context.Context, row domain.SummaryRow) (int64, error)
	// ListAll returns all rows in insertion order.
	ListAll(ctx context.Context) ([]domain.SummaryRow, error)
	GetByID(ctx context.Context, id int64) (domain.SummaryRow, error)
}

type QuoteProvider interface {
	Get(ctx context.Context, symbol string) (domain.Quote, error)
}

type RateProvider interface {
	Get(ctx context.Context, currency domain.Currency) (domain.Rate, error)
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
