package pg_test

import (
	"context"
	"testing"
	"time"

	"stocksummary-service/internal/domain"
	"stocksummary-service/internal/infrastructure/pg"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func sampleRow() domain.SummaryRow {
	return domain.SummaryRow{
		Date:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Name:        "Apple Inc.",
		StockSymbol: "AAPL",
		PriceUSD:    decimal.RequireFromString("150.00"),
		Prices: map[domain.Currency]decimal.Decimal{
			"eur": decimal.RequireFromString("138.00"),
			"dkk": decimal.RequireFromString("1035.00"),
		},
	}
}

func TestSummaryRepo_AppendGetRoundTrip(t *testing.T) {
	db := withPostgres(t)
	repo := pg.NewSummaryRepo(db)
	ctx := context.Background()

	want := sampleRow()
	id, err := repo.Append(ctx, want)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, want.Name, got.Name)
	require.Equal(t, want.StockSymbol, got.StockSymbol)
	require.True(t, want.Date.Equal(got.Date))
	require.True(t, want.PriceUSD.Equal(got.PriceUSD))
	require.Len(t, got.Prices, len(want.Prices))
	for c, v := range want.Prices {
		require.True(t, v.Equal(got.Prices[c]), "price for %s", c)
	}
}

func TestSummaryRepo_ListAllInsertionOrder(t *testing.T) {
	db := withPostgres(t)
	repo := pg.NewSummaryRepo(db)
	ctx := context.Background()

	before, err := repo.ListAll(ctx)
	require.NoError(t, err)

	first := sampleRow()
	second := sampleRow()
	second.StockSymbol = "MSFT"
	delete(second.Prices, "dkk")

	_, err = repo.Append(ctx, first)
	require.NoError(t, err)
	mid, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, mid, len(before)+1)

	_, err = repo.Append(ctx, second)
	require.NoError(t, err)
	after, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+2)

	last := after[len(after)-1]
	require.Equal(t, "MSFT", last.StockSymbol)
	require.Contains(t, last.Prices, domain.Currency("eur"))
	require.NotContains(t, last.Prices, domain.Currency("dkk"))
}

func TestSummaryRepo_GetByIDNotFound(t *testing.T) {
	db := withPostgres(t)
	repo := pg.NewSummaryRepo(db)

	_, err := repo.GetByID(context.Background(), 1<<40)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummaryRepo_AppendRejectsUnknownCurrencyColumn(t *testing.T) {
	db := withPostgres(t)
	repo := pg.NewSummaryRepo(db)

	row := sampleRow()
	row.Prices[domain.Currency("sek")] = decimal.RequireFromString("1.00")
	_, err := repo.Append(context.Background(), row)
	require.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}
