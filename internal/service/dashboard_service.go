package service

import (
	"context"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/ledger"
	"github.com/newstarted0004/surti-khaman/internal/repository"
)

// DashboardService aggregates the four transaction streams over a period
// preset. Nothing here is stored — every figure is recomputed per request.
type DashboardService interface {
	Summary(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	sales     repository.DailySaleRepository
	bulkSales repository.BulkSaleRepository
	purchases repository.PurchaseRepository
	workers   repository.WorkerLedgerRepository
	now       func() time.Time
}

func NewDashboardService(
	sales repository.DailySaleRepository,
	bulkSales repository.BulkSaleRepository,
	purchases repository.PurchaseRepository,
	workers repository.WorkerLedgerRepository,
) DashboardService {
	return &dashboardService{
		sales:     sales,
		bulkSales: bulkSales,
		purchases: purchases,
		workers:   workers,
		now:       time.Now,
	}
}

func (s *dashboardService) Summary(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error) {
	period := ledger.ParsePeriod(filter.Period)
	r := ledger.Range(period, s.now())

	dailySales, err := s.sales.ListBetween(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	bulkSales, err := s.bulkSales.ListBetween(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchases.ListBetween(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	payments, err := s.workers.ListPaymentsBetween(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}

	saleEntries := make([]ledger.Entry, 0, len(dailySales))
	for _, d := range dailySales {
		saleEntries = append(saleEntries, ledger.Entry{Date: d.Date, Amount: d.TotalAmount})
	}
	bulkEntries := make([]ledger.Entry, 0, len(bulkSales))
	for _, b := range bulkSales {
		bulkEntries = append(bulkEntries, ledger.Entry{Date: b.Date, Amount: b.TotalAmount})
	}
	purchaseEntries := make([]ledger.Entry, 0, len(purchases))
	for _, p := range purchases {
		purchaseEntries = append(purchaseEntries, ledger.Entry{Date: p.Date, Amount: p.TotalBill})
	}
	costEntries := make([]ledger.Entry, 0, len(payments))
	for _, p := range payments {
		costEntries = append(costEntries, ledger.Entry{Date: p.Date, Amount: p.Amount})
	}

	totals := ledger.TotalsInRange(saleEntries, bulkEntries, purchaseEntries, costEntries, r)

	return &dto.DashboardResponse{
		Period:      string(period),
		From:        fmtDate(r.Start),
		To:          fmtDate(r.End),
		Sales:       fmtMoney(totals.Sales),
		BulkSales:   fmtMoney(totals.BulkSales),
		Purchases:   fmtMoney(totals.Purchases),
		WorkerCosts: fmtMoney(totals.WorkerCosts),
		NetProfit:   fmtMoney(ledger.NetProfit(totals)),
	}, nil
}
