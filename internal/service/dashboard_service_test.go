package service

import (
	"context"
	"testing"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T) (*dashboardService, *stubDailySaleRepo, *stubBulkSaleRepo, *stubPurchaseRepo, *stubWorkerLedgerRepo) {
	t.Helper()
	sales := newStubDailySaleRepo()
	bulk := newStubBulkSaleRepo()
	purchases := newStubPurchaseRepo()
	entries := newStubWorkerLedgerRepo()

	svc := NewDashboardService(sales, bulk, purchases, entries).(*dashboardService)
	svc.now = func() time.Time { return time.Date(2026, 8, 18, 14, 30, 0, 0, time.UTC) }
	return svc, sales, bulk, purchases, entries
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDashboardNetProfit(t *testing.T) {
	svc, sales, bulk, purchases, entries := newTestDashboard(t)
	ctx := context.Background()

	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2026, 8, 18), TotalAmount: decimal.NewFromInt(2000)}))
	require.NoError(t, bulk.Create(ctx, &model.BulkSale{Date: day(2026, 8, 18), TotalAmount: decimal.NewFromInt(450)}))
	require.NoError(t, purchases.Create(ctx, &model.Purchase{Date: day(2026, 8, 18), TotalBill: decimal.NewFromInt(700)}))
	require.NoError(t, entries.CreatePayment(ctx, &model.WorkerSalaryPayment{Date: day(2026, 8, 18), Amount: decimal.NewFromInt(400)}))

	resp, err := svc.Summary(ctx, dto.DashboardFilter{Period: "today"})
	require.NoError(t, err)

	assert.Equal(t, "today", resp.Period)
	assert.Equal(t, "2026-08-18", resp.From)
	assert.Equal(t, "2026-08-18", resp.To)
	assert.Equal(t, "2000.00", resp.Sales)
	assert.Equal(t, "450.00", resp.BulkSales)
	assert.Equal(t, "700.00", resp.Purchases)
	assert.Equal(t, "400.00", resp.WorkerCosts)
	// 2000 + 450 − 700 − 400
	assert.Equal(t, "1350.00", resp.NetProfit)
}

func TestDashboardTodayExcludesOtherDays(t *testing.T) {
	svc, sales, _, _, _ := newTestDashboard(t)
	ctx := context.Background()

	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2026, 8, 18), TotalAmount: decimal.NewFromInt(100)}))
	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2026, 8, 17), TotalAmount: decimal.NewFromInt(900)}))

	resp, err := svc.Summary(ctx, dto.DashboardFilter{Period: "today"})
	require.NoError(t, err)
	assert.Equal(t, "100.00", resp.Sales)
}

func TestDashboardMonthSpansCalendarMonth(t *testing.T) {
	svc, sales, _, purchases, _ := newTestDashboard(t)
	ctx := context.Background()

	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2026, 8, 1), TotalAmount: decimal.NewFromInt(100)}))
	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2026, 8, 31), TotalAmount: decimal.NewFromInt(200)}))
	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2026, 7, 31), TotalAmount: decimal.NewFromInt(5000)}))
	require.NoError(t, purchases.Create(ctx, &model.Purchase{Date: day(2026, 8, 10), TotalBill: decimal.NewFromInt(50)}))

	resp, err := svc.Summary(ctx, dto.DashboardFilter{Period: "month"})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", resp.From)
	assert.Equal(t, "2026-08-31", resp.To)
	assert.Equal(t, "300.00", resp.Sales)
	assert.Equal(t, "250.00", resp.NetProfit)
}

func TestDashboardUnknownPeriodFallsBackToToday(t *testing.T) {
	svc, _, _, _, _ := newTestDashboard(t)

	resp, err := svc.Summary(context.Background(), dto.DashboardFilter{Period: "fortnight"})
	require.NoError(t, err)
	assert.Equal(t, "today", resp.Period)
	assert.Equal(t, resp.From, resp.To)
}

func TestDashboardYear(t *testing.T) {
	svc, sales, _, _, _ := newTestDashboard(t)
	ctx := context.Background()

	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2026, 1, 1), TotalAmount: decimal.NewFromInt(10)}))
	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2026, 12, 31), TotalAmount: decimal.NewFromInt(20)}))
	require.NoError(t, sales.Create(ctx, &model.DailySale{Date: day(2025, 12, 31), TotalAmount: decimal.NewFromInt(40)}))

	resp, err := svc.Summary(ctx, dto.DashboardFilter{Period: "year"})
	require.NoError(t, err)
	assert.Equal(t, "30.00", resp.Sales)
}
