package service

import (
	"context"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/ledger"
	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"

	"github.com/google/uuid"
)

type BulkSaleService interface {
	Create(ctx context.Context, req dto.SaveBulkSaleRequest) (*dto.BulkSaleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveBulkSaleRequest) (*dto.BulkSaleResponse, error)
	RecordPayment(ctx context.Context, id uuid.UUID, req dto.RecordPaymentRequest) (*dto.BulkSaleResponse, error)
	List(ctx context.Context) ([]dto.BulkSaleResponse, error)
}

type bulkSaleService struct {
	repo repository.BulkSaleRepository
}

func NewBulkSaleService(repo repository.BulkSaleRepository) BulkSaleService {
	return &bulkSaleService{repo: repo}
}

// applyFigures derives total and remaining from the raw quantity/price/paid
// inputs. This is the only write path for the derived columns, so the
// invariant remaining == total − paid holds at rest.
func applyBulkSaleFigures(b *model.BulkSale, quantity, pricePerKg, paid string) {
	b.Quantity = ledger.ParseAmount(quantity)
	b.PricePerKg = ledger.ParseAmount(pricePerKg)
	b.TotalAmount = ledger.LineTotal(b.Quantity, b.PricePerKg)
	b.PaidAmount = ledger.ParseAmount(paid)
	b.RemainingAmount = ledger.Remaining(b.TotalAmount, b.PaidAmount)
}

func (s *bulkSaleService) Create(ctx context.Context, req dto.SaveBulkSaleRequest) (*dto.BulkSaleResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, err
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	sale := &model.BulkSale{
		CustomerID: customerID,
		ProductID:  productID,
		Date:       date,
	}
	applyBulkSaleFigures(sale, req.Quantity, req.PricePerKg, req.PaidAmount)

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	// Re-read with joined customer/product for the response.
	full, err := s.repo.FindByID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	return bulkSaleToResponse(full), nil
}

func (s *bulkSaleService) Update(ctx context.Context, id uuid.UUID, req dto.SaveBulkSaleRequest) (*dto.BulkSaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, err
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	sale.CustomerID = customerID
	sale.ProductID = productID
	sale.Date = date
	applyBulkSaleFigures(sale, req.Quantity, req.PricePerKg, req.PaidAmount)

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	full, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return bulkSaleToResponse(full), nil
}

// RecordPayment changes only the paid side; remaining is re-derived from
// the stored total.
func (s *bulkSaleService) RecordPayment(ctx context.Context, id uuid.UUID, req dto.RecordPaymentRequest) (*dto.BulkSaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sale.PaidAmount = ledger.ParseAmount(req.PaidAmount)
	sale.RemainingAmount = ledger.Remaining(sale.TotalAmount, sale.PaidAmount)

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return bulkSaleToResponse(sale), nil
}

func (s *bulkSaleService) List(ctx context.Context) ([]dto.BulkSaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BulkSaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *bulkSaleToResponse(&sales[i]))
	}
	return out, nil
}

func bulkSaleToResponse(b *model.BulkSale) *dto.BulkSaleResponse {
	resp := &dto.BulkSaleResponse{
		ID:              b.ID.String(),
		Quantity:        b.Quantity.StringFixed(3),
		PricePerKg:      fmtMoney(b.PricePerKg),
		TotalAmount:     fmtMoney(b.TotalAmount),
		Date:            fmtDate(b.Date),
		PaidAmount:      fmtMoney(b.PaidAmount),
		RemainingAmount: fmtMoney(b.RemainingAmount),
		CreatedAt:       b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if b.Customer != nil {
		resp.Customer = customerToResponse(b.Customer)
	}
	if b.Product != nil {
		resp.Product = productToResponse(b.Product)
	}
	return resp
}
