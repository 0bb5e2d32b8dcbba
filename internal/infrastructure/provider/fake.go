package provider

import (
	"context"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Ensure fakes satisfy the application ports.
var _ application.QuoteProvider = (*FakeQuotes)(nil)
var _ application.RateProvider = (*FakeRates)(nil)

type FakeQuotes struct {
	price decimal.Decimal
}

func NewFakeQuotes(price float64) *FakeQuotes {
	return &FakeQuotes{price: decimal.NewFromFloat(price)}
}

func (f *FakeQuotes) Get(_ context.Context, symbol string) (domain.Quote, error) {
	return domain.Quote{
		Name:        "Fake " + symbol,
		StockSymbol: symbol,
		PriceUSD:    f.price,
	}, nil
}

type FakeRates struct {
	rate decimal.Decimal
}

func NewFakeRates(rate float64) *FakeRates {
	return &FakeRates{rate: decimal.NewFromFloat(rate)}
}

func (f *FakeRates) Get(_ context.Context, currency domain.Currency) (domain.Rate, error) {
	return domain.Rate{Currency: currency, Value: f.rate}, nil
}
