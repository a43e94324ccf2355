package service

import (
	"context"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/ledger"
	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"

	"github.com/google/uuid"
)

type PurchaseService interface {
	Create(ctx context.Context, req dto.SavePurchaseRequest) (*dto.PurchaseResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SavePurchaseRequest) (*dto.PurchaseResponse, error)
	RecordPayment(ctx context.Context, id uuid.UUID, req dto.RecordPaymentRequest) (*dto.PurchaseResponse, error)
	List(ctx context.Context) ([]dto.PurchaseResponse, error)
}

type purchaseService struct {
	repo repository.PurchaseRepository
}

func NewPurchaseService(repo repository.PurchaseRepository) PurchaseService {
	return &purchaseService{repo: repo}
}

// Purchases key their balance on total_bill (the shop's bill), not on a
// computed line total — amount is informational.
func applyPurchaseFigures(p *model.Purchase, amount, totalBill, paid string) {
	p.Amount = ledger.ParseAmount(amount)
	p.TotalBill = ledger.ParseAmount(totalBill)
	p.PaidAmount = ledger.ParseAmount(paid)
	p.RemainingAmount = ledger.Remaining(p.TotalBill, p.PaidAmount)
}

func (s *purchaseService) Create(ctx context.Context, req dto.SavePurchaseRequest) (*dto.PurchaseResponse, error) {
	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return nil, err
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	purchase := &model.Purchase{
		ShopID:       shopID,
		ItemID:       itemID,
		Quantity:     req.Quantity,
		Date:         date,
		PurchaseTime: req.PurchaseTime,
	}
	applyPurchaseFigures(purchase, req.Amount, req.TotalBill, req.PaidAmount)

	if err := s.repo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	full, err := s.repo.FindByID(ctx, purchase.ID)
	if err != nil {
		return nil, err
	}
	return purchaseToResponse(full), nil
}

func (s *purchaseService) Update(ctx context.Context, id uuid.UUID, req dto.SavePurchaseRequest) (*dto.PurchaseResponse, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shopID, err := uuid.Parse(req.ShopID)
	if err != nil {
		return nil, err
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	purchase.ShopID = shopID
	purchase.ItemID = itemID
	purchase.Quantity = req.Quantity
	purchase.Date = date
	purchase.PurchaseTime = req.PurchaseTime
	applyPurchaseFigures(purchase, req.Amount, req.TotalBill, req.PaidAmount)

	if err := s.repo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	full, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return purchaseToResponse(full), nil
}

func (s *purchaseService) RecordPayment(ctx context.Context, id uuid.UUID, req dto.RecordPaymentRequest) (*dto.PurchaseResponse, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	purchase.PaidAmount = ledger.ParseAmount(req.PaidAmount)
	purchase.RemainingAmount = ledger.Remaining(purchase.TotalBill, purchase.PaidAmount)

	if err := s.repo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchaseToResponse(purchase), nil
}

func (s *purchaseService) List(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		out = append(out, *purchaseToResponse(&purchases[i]))
	}
	return out, nil
}

func purchaseToResponse(p *model.Purchase) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:              p.ID.String(),
		Quantity:        p.Quantity,
		Amount:          fmtMoney(p.Amount),
		Date:            fmtDate(p.Date),
		PurchaseTime:    p.PurchaseTime,
		TotalBill:       fmtMoney(p.TotalBill),
		PaidAmount:      fmtMoney(p.PaidAmount),
		RemainingAmount: fmtMoney(p.RemainingAmount),
		CreatedAt:       p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if p.Shop != nil {
		resp.Shop = shopToResponse(p.Shop)
	}
	if p.Item != nil {
		resp.Item = itemToResponse(p.Item)
	}
	return resp
}
