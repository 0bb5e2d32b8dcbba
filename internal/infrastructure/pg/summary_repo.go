package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stocksummary-service/internal/domain"
	"stocksummary-service/internal/infrastructure/logx"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// currencyColumns is the fixed mapping from target currency to its column.
// Row fields are validated against it at insert time; adding a currency
// requires a migration plus an entry here.
var currencyColumns = map[domain.Currency]string{
	"eur": "price_eur",
	"dkk": "price_dkk",
}

type SummaryRepo struct{ db *DB }

func NewSummaryRepo(db *DB) *SummaryRepo { return &SummaryRepo{db: db} }

func (r *SummaryRepo) Append(ctx context.Context, row domain.SummaryRow) (int64, error) {
	for c := range row.Prices {
		if _, ok := currencyColumns[c]; !ok {
			return 0, fmt.Errorf("%w: no column for currency %q", domain.ErrUnsupportedCurrency, c)
		}
	}

	const ins = `
        INSERT INTO stock_summaries(date, name, stock_symbol, price_usd, price_eur, price_dkk)
        VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric)
        RETURNING id`
	log := logx.L().With(
		zap.String("repo", "summary"),
		zap.String("operation", "Append"),
		zap.String("stock_symbol", row.StockSymbol),
	)
	log.Info("sql.exec_start")
	var id int64
	err := r.db.Pool.QueryRow(ctx, ins,
		row.Date, row.Name, row.StockSymbol,
		row.PriceUSD.String(),
		priceArg(row.Prices, "eur"),
		priceArg(row.Prices, "dkk"),
	).Scan(&id)
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return 0, err
	}
	log.Info("sql.exec_success", zap.Int64("id", id))
	return id, nil
}

const selectCols = `
        SELECT id, date, name, stock_symbol,
               price_usd::text, price_eur::text, price_dkk::text
        FROM stock_summaries`

func (r *SummaryRepo) ListAll(ctx context.Context) ([]domain.SummaryRow, error) {
	rows, err := r.db.Pool.Query(ctx, selectCols+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SummaryRow
	for rows.Next() {
		row, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *SummaryRepo) GetByID(ctx context.Context, id int64) (domain.SummaryRow, error) {
	row, err := scanSummary(r.db.Pool.QueryRow(ctx, selectCols+` WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SummaryRow{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.SummaryRow{}, err
	}
	return row, nil
}

func priceArg(prices map[domain.Currency]decimal.Decimal, c domain.Currency) *string {
	v, ok := prices[c]
	if !ok {
		return nil
	}
	s := v.StringFixed(2)
	return &s
}

type scannable interface {
	Scan(dest ...any) error
}

func scanSummary(row scannable) (domain.SummaryRow, error) {
	var (
		out      domain.SummaryRow
		date     time.Time
		usd      string
		eur, dkk *string
	)
	if err := row.Scan(&out.ID, &date, &out.Name, &out.StockSymbol, &usd, &eur, &dkk); err != nil {
		return domain.SummaryRow{}, err
	}
	out.Date = date.UTC()

	var err error
	if out.PriceUSD, err = decimal.NewFromString(usd); err != nil {
		return domain.SummaryRow{}, fmt.Errorf("parse price_usd: %w", err)
	}
	out.Prices = map[domain.Currency]decimal.Decimal{}
	for c, col := range map[domain.Currency]*string{"eur": eur, "dkk": dkk} {
		if col == nil {
			continue
		}
		if out.Prices[c], err = decimal.NewFromString(*col); err != nil {
			return domain.SummaryRow{}, fmt.Errorf("parse %s: %w", currencyColumns[c], err)
		}
	}
	return out, nil
}
