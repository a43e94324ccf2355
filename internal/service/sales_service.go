package service

import (
	"context"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/ledger"
	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"

	"github.com/google/uuid"
)

type SalesService interface {
	Create(ctx context.Context, req dto.SaveDailySaleRequest) (*dto.DailySaleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveDailySaleRequest) (*dto.DailySaleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit int) ([]dto.DailySaleResponse, error)
}

type salesService struct {
	repo repository.DailySaleRepository
}

func NewSalesService(repo repository.DailySaleRepository) SalesService {
	return &salesService{repo: repo}
}

func (s *salesService) Create(ctx context.Context, req dto.SaveDailySaleRequest) (*dto.DailySaleResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	sale := &model.DailySale{
		Date:        date,
		TotalAmount: ledger.ParseAmount(req.TotalAmount),
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return dailySaleToResponse(sale), nil
}

func (s *salesService) Update(ctx context.Context, id uuid.UUID, req dto.SaveDailySaleRequest) (*dto.DailySaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	sale.Date = date
	sale.TotalAmount = ledger.ParseAmount(req.TotalAmount)
	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return dailySaleToResponse(sale), nil
}

func (s *salesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *salesService) List(ctx context.Context, limit int) ([]dto.DailySaleResponse, error) {
	sales, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailySaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *dailySaleToResponse(&sales[i]))
	}
	return out, nil
}

func dailySaleToResponse(s *model.DailySale) *dto.DailySaleResponse {
	return &dto.DailySaleResponse{
		ID:          s.ID.String(),
		Date:        fmtDate(s.Date),
		TotalAmount: fmtMoney(s.TotalAmount),
		CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
