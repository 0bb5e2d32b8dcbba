package httpserver

import (
	"context"

	"stocksummary-service/internal/application"
	"stocksummary-service/internal/domain"
)

var _ application.SummaryRepo = (*fakeSummaryRepo)(nil)

type fakeSummaryRepo struct {
	rows   []domain.SummaryRow
	nextID int64
}

func (f *fakeSummaryRepo) Append(_ context.Context, row domain.SummaryRow) (int64, error) {
	f.nextID++
	row.ID = f.nextID
	f.rows = append(f.rows, row)
	return row.ID, nil
}

func (f *fakeSummaryRepo) ListAll(_ context.Context) ([]domain.SummaryRow, error) {
	out := make([]domain.SummaryRow, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeSummaryRepo) GetByID(_ context.Context, id int64) (domain.SummaryRow, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.SummaryRow{}, domain.ErrNotFound
}

// NewInMemoryService builds a SummaryService on an in-memory repo, for tests
// and local development.
func NewInMemoryService(rows ...domain.SummaryRow) (*application.SummaryService, *fakeSummaryRepo) {
	repo := &fakeSummaryRepo{}
	for _, r := range rows {
		_, _ = repo.Append(context.Background(), r)
	}
	return application.NewSummaryService(repo), repo
}
