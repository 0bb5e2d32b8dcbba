package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SummaryRow is one persisted snapshot of a stock quote with its converted
// prices. Rows are append-only and never mutated after insert.
type SummaryRow struct {
	ID          int64
	Date        time.Time
	Name        string
	StockSymbol string
	PriceUSD    decimal.Decimal
	// Prices holds one converted price per currency requested at build
	// time, keyed by target currency.
	Prices map[Currency]decimal.Decimal
}

// Convert multiplies a USD price by a rate and rounds to two decimal places,
// half away from zero.
func Convert(priceUSD, rate decimal.Decimal) decimal.Decimal {
	return priceUSD.Mul(rate).Round(2)
}

// BuildSummaryRow assembles a SummaryRow from a fetched quote and one rate
// per requested currency. The resulting price set matches the rate set
// exactly; duplicate or empty rate input is rejected.
func BuildSummaryRow(q Quote, rates []Rate, now time.Time) (SummaryRow, error) {
	if len(rates) == 0 {
		return SummaryRow{}, fmt.Errorf("%w: no rates", ErrInvalidArgument)
	}
	prices := make(map[Currency]decimal.Decimal, len(rates))
	for _, r := range rates {
		if !SupportedCurrency[r.Currency] {
			return SummaryRow{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, r.Currency)
		}
		if _, ok := prices[r.Currency]; ok {
			return SummaryRow{}, fmt.Errorf("%w: duplicate rate for %q", ErrInvalidArgument, r.Currency)
		}
		prices[r.Currency] = Convert(q.PriceUSD, r.Value)
	}
	return SummaryRow{
		Date:        now.UTC(),
		Name:        q.Name,
		StockSymbol: q.StockSymbol,
		PriceUSD:    q.PriceUSD,
		Prices:      prices,
	}, nil
}
