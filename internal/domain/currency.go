package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Currency is a lowercase three-letter currency code, e.g. "eur".
type Currency string

// SupportedCurrency lists the target currencies the summary schema has a
// column for. Adding one requires a schema migration.
var SupportedCurrency = map[Currency]bool{
	"eur": true,
	"dkk": true,
}

var currencyRe = regexp.MustCompile(`^[a-z]{3}$`)

// ParseCurrency lowercases the code and validates it against the supported
// set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToLower(code))
	if !currencyRe.MatchString(string(c)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidArgument, code)
	}
	if !SupportedCurrency[c] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	return c, nil
}

// ParseCurrencies validates a requested currency list: it must be non-empty
// and free of duplicates.
func ParseCurrencies(codes []string) ([]Currency, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: empty currency list", ErrInvalidArgument)
	}
	seen := make(map[Currency]bool, len(codes))
	out := make([]Currency, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCurrency(code)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate currency %q", ErrInvalidArgument, c)
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

// Field returns the converted-price field name for the currency, e.g.
// "priceEUR".
func (c Currency) Field() string {
	return "price" + strings.ToUpper(string(c))
}
