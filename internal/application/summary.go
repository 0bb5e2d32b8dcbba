package application

import (
	"context"

	"stocksummary-service/internal/domain"
)

// SummaryService answers read queries over persisted rows. It never writes.
type SummaryService struct {
	repo SummaryRepo
}

func NewSummaryService(repo SummaryRepo) *SummaryService { return &SummaryService{repo: repo} }

func (s *SummaryService) List(ctx context.Context) ([]domain.SummaryRow, error) {
	return s.repo.ListAll(ctx)
}

func (s *SummaryService) Get(ctx context.Context, id int64) (domain.SummaryRow, error) {
	return s.repo.GetByID(ctx, id)
}
