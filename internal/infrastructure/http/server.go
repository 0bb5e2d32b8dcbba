package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Server struct {
	svc  *application.SummaryService
	ping func(ctx context.Context) error
}

func NewServer(svc *application.SummaryService) *Server { return &Server{svc: svc} }

// SetReadyCheck wires a dependency probe (DB ping) into /readyz.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ping = fn }

type summaryJSON struct {
	ID          int64            `json:"id"`
	Date        string           `json:"date"`
	Name        string           `json:"name"`
	StockSymbol string           `json:"stockSymbol"`
	PriceUSD    decimal.Decimal  `json:"priceUSD"`
	PriceEUR    *decimal.Decimal `json:"priceEUR,omitempty"`
	PriceDKK    *decimal.Decimal `json:"priceDKK,omitempty"`
}

func toSummaryJSON(row domain.SummaryRow) summaryJSON {
	out := summaryJSON{
		ID:          row.ID,
		Date:        row.Date.UTC().Format(time.RFC3339),
		Name:        row.Name,
		StockSymbol: row.StockSymbol,
		PriceUSD:    row.PriceUSD,
	}
	if v, ok := row.Prices["eur"]; ok {
		out.PriceEUR = &v
	}
	if v, ok := row.Prices["dkk"]; ok {
		out.PriceDKK = &v
	}
	return out
}

func (s *Server) ListStockData(w http.ResponseWriter, r *http.Request) {
	rows, err := s.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list stock data")
		return
	}
	data := make([]summaryJSON, 0, len(rows))
	for _, row := range rows {
		data = append(data, toSummaryJSON(row))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "success",
		"data":    data,
	})
}

func (s *Server) GetStockData(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}
	row, err := s.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "row not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get stock data")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "success",
		"row":     toSummaryJSON(row),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"code": code, "message": msg})
}
