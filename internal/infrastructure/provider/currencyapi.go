package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/domain"
	"stocksummary-service/internal/infrastructure/httpx"

	"github.com/shopspring/decimal"
)

// CurrencyAPIProvider fetches USD-to-target rates from the fawazahmed0
// currency-api CDN. The response object is keyed by the target currency
// code; the rate is read under the exact requested key, never a fixed one.
type CurrencyAPIProvider struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.RateProvider = (*CurrencyAPIProvider)(nil)

func (p *CurrencyAPIProvider) Get(ctx context.Context, currency domain.Currency) (domain.Rate, error) {
	if p.BaseURL == "" {
		return domain.Rate{}, errors.New("currencyapi: missing configuration")
	}
	if currency == "" {
		return domain.Rate{}, fmt.Errorf("%w: empty currency", domain.ErrInvalidArgument)
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("currencyapi: invalid base url: %w", err)
	}
	u.Path += fmt.Sprintf("/latest/currencies/usd/%s.json", currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("currencyapi: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body map[string]json.RawMessage
	if err := client.DoJSON(req, &body); err != nil {
		return domain.Rate{}, fmt.Errorf("currencyapi: %w", err)
	}

	raw, ok := body[string(currency)]
	if !ok {
		return domain.Rate{}, fmt.Errorf("currencyapi: missing rate for %q", currency)
	}
	var rate decimal.Decimal
	if err := json.Unmarshal(raw, &rate); err != nil {
		return domain.Rate{}, fmt.Errorf("currencyapi: parse rate for %q: %w", currency, err)
	}
	if !rate.IsPositive() {
		return domain.Rate{}, fmt.Errorf("currencyapi: non-positive rate for %q", currency)
	}

	return domain.Rate{Currency: currency, Value: rate}, nil
}
