package domain

import "github.com/shopspring/decimal"

// Quote is a stock's latest summary as reported by the quote provider. The
// price is trusted as-is; no bounds checking happens here.
type Quote struct {
	Name        string
	StockSymbol string
	PriceUSD    decimal.Decimal
}

// Rate is a USD-to-target conversion multiplier from the rate provider's
// latest snapshot.
type Rate struct {
	Currency Currency
	Value    decimal.Decimal
}
