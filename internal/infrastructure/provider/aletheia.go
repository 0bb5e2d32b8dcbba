package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/domain"
	"stocksummary-service/internal/infrastructure/httpx"

	"github.com/shopspring/decimal"
)

const stockDataPath = "/StockData"

// AletheiaProvider fetches a stock's latest summary from the Aletheia API.
// Authentication is a static API key sent in the "key" request header.
type AletheiaProvider struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.QuoteProvider = (*AletheiaProvider)(nil)

type stockDataResp struct {
	Summary struct {
		Name        string          `json:"Name"`
		StockSymbol string          `json:"StockSymbol"`
		Price       decimal.Decimal `json:"Price"`
	} `json:"Summary"`
}

func (p *AletheiaProvider) Get(ctx context.Context, symbol string) (domain.Quote, error) {
	if p.BaseURL == "" || p.APIKey == "" {
		return domain.Quote{}, errors.New("aletheia: missing configuration")
	}
	if symbol == "" {
		return domain.Quote{}, fmt.Errorf("%w: empty symbol", domain.ErrInvalidArgument)
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("aletheia: invalid base url: %w", err)
	}
	u.Path = stockDataPath
	q := u.Query()
	q.Set("symbol", symbol)
	q.Set("summary", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("aletheia: create request: %w", err)
	}
	req.Header.Set("key", p.APIKey)

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body stockDataResp
	if err := client.DoJSON(req, &body); err != nil {
		return domain.Quote{}, fmt.Errorf("aletheia: %w", err)
	}
	if body.Summary.StockSymbol == "" {
		return domain.Quote{}, fmt.Errorf("aletheia: no summary for %q", symbol)
	}

	return domain.Quote{
		Name:        body.Summary.Name,
		StockSymbol: body.Summary.StockSymbol,
		PriceUSD:    body.Summary.Price,
	}, nil
}
