package application

import (
	"context"
	"errors"
	"time"

	"stocksummary-service/internal/domain"

	"github.com/shopspring/decimal"
)

var ErrRepo = errors.New("repo error")

type fakeSummaryRepo struct {
	rows   []domain.SummaryRow
	nextID int64
	err    error
}

func (f *fakeSummaryRepo) Append(_ context.Context, row domain.SummaryRow) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	row.ID = f.nextID
	f.rows = append(f.rows, row)
	return row.ID, nil
}

func (f *fakeSummaryRepo) ListAll(_ context.Context) ([]domain.SummaryRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.SummaryRow, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeSummaryRepo) GetByID(_ context.Context, id int64) (domain.SummaryRow, error) {
	if f.err != nil {
		return domain.SummaryRow{}, f.err
	}
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.SummaryRow{}, domain.ErrNotFound
}

type fakeQuoteProvider struct {
	out domain.Quote
	err error
}

func (f *fakeQuoteProvider) Get(context.Context, string) (domain.Quote, error) {
	if f.err != nil {
		return domain.Quote{}, f.err
	}
	return f.out, nil
}

type fakeRateProvider struct {
	rates map[domain.Currency]decimal.Decimal
	err   error
}

func (f *fakeRateProvider) Get(_ context.Context, c domain.Currency) (domain.Rate, error) {
	if f.err != nil {
		return domain.Rate{}, f.err
	}
	v, ok := f.rates[c]
	if !ok {
		return domain.Rate{}, domain.ErrNotFound
	}
	return domain.Rate{Currency: c, Value: v}, nil
}

type fakeIdem struct {
	seen map[string]bool
	err  error
}

func (f *fakeIdem) TryReserve(_ context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }
