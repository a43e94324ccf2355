package service

import (
	"context"
	"testing"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkerLedger(t *testing.T) (*workerLedgerService, *model.Worker, *stubWorkerLedgerRepo) {
	t.Helper()
	workers := newStubWorkerRepo()
	entries := newStubWorkerLedgerRepo()

	w := &model.Worker{Name: "Rameshbhai", PerDaySalary: decimal.NewFromInt(400)}
	require.NoError(t, workers.Create(context.Background(), w))

	svc := NewWorkerLedgerService(workers, entries).(*workerLedgerService)
	svc.now = func() time.Time { return time.Date(2026, 8, 18, 10, 0, 0, 0, time.UTC) }
	return svc, w, entries
}

func TestToggleAttendanceFirstMarkIsPresent(t *testing.T) {
	svc, w, _ := newTestWorkerLedger(t)

	resp, err := svc.ToggleAttendance(context.Background(), w.ID, dto.ToggleAttendanceRequest{Date: "2026-08-18"})
	require.NoError(t, err)
	assert.True(t, resp.IsPresent)

	// The same day toggles back to absent; no new row is written.
	resp, err = svc.ToggleAttendance(context.Background(), w.ID, dto.ToggleAttendanceRequest{Date: "2026-08-18"})
	require.NoError(t, err)
	assert.False(t, resp.IsPresent)

	list, err := svc.ListAttendance(context.Background(), w.ID, dto.WorkerRangeFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestToggleAttendanceUnknownWorker(t *testing.T) {
	svc, _, _ := newTestWorkerLedger(t)

	_, err := svc.ToggleAttendance(context.Background(), uuid.New(), dto.ToggleAttendanceRequest{Date: "2026-08-18"})
	require.Error(t, err)
}

func TestWorkerSummaryReconciles(t *testing.T) {
	svc, w, _ := newTestWorkerLedger(t)
	ctx := context.Background()

	for _, day := range []string{"2026-08-03", "2026-08-04", "2026-08-05"} {
		_, err := svc.ToggleAttendance(ctx, w.ID, dto.ToggleAttendanceRequest{Date: day})
		require.NoError(t, err)
	}
	// One extra day toggled on and off again must not count.
	_, err := svc.ToggleAttendance(ctx, w.ID, dto.ToggleAttendanceRequest{Date: "2026-08-06"})
	require.NoError(t, err)
	_, err = svc.ToggleAttendance(ctx, w.ID, dto.ToggleAttendanceRequest{Date: "2026-08-06"})
	require.NoError(t, err)

	_, err = svc.CreateAdvance(ctx, w.ID, dto.SaveWorkerEntryRequest{Amount: "100", Date: "2026-08-04"})
	require.NoError(t, err)
	_, err = svc.CreateAdvance(ctx, w.ID, dto.SaveWorkerEntryRequest{Amount: "50", Date: "2026-08-10"})
	require.NoError(t, err)
	_, err = svc.CreatePayment(ctx, w.ID, dto.SaveWorkerEntryRequest{Amount: "500", Date: "2026-08-15"})
	require.NoError(t, err)

	sum, err := svc.Summary(ctx, w.ID, dto.WorkerRangeFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, sum.PresentDays)
	assert.Equal(t, "1200.00", sum.TotalSalary)
	assert.Equal(t, "150.00", sum.TotalAdvances)
	assert.Equal(t, "500.00", sum.TotalPayments)
	// 1200 − 150 − 500
	assert.Equal(t, "550.00", sum.Remaining)
	assert.Equal(t, "Rameshbhai", sum.WorkerName)
}

func TestWorkerSummaryDefaultsToCurrentMonth(t *testing.T) {
	svc, w, _ := newTestWorkerLedger(t)
	ctx := context.Background()

	// July entries fall outside the default (August) window.
	_, err := svc.ToggleAttendance(ctx, w.ID, dto.ToggleAttendanceRequest{Date: "2026-07-28"})
	require.NoError(t, err)
	_, err = svc.CreateAdvance(ctx, w.ID, dto.SaveWorkerEntryRequest{Amount: "999", Date: "2026-07-28"})
	require.NoError(t, err)

	sum, err := svc.Summary(ctx, w.ID, dto.WorkerRangeFilter{})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", sum.From)
	assert.Equal(t, "2026-08-31", sum.To)
	assert.Equal(t, 0, sum.PresentDays)
	assert.Equal(t, "0.00", sum.TotalAdvances)
}

func TestWorkerSummaryExplicitRange(t *testing.T) {
	svc, w, _ := newTestWorkerLedger(t)
	ctx := context.Background()

	_, err := svc.ToggleAttendance(ctx, w.ID, dto.ToggleAttendanceRequest{Date: "2026-07-28"})
	require.NoError(t, err)
	_, err = svc.ToggleAttendance(ctx, w.ID, dto.ToggleAttendanceRequest{Date: "2026-08-02"})
	require.NoError(t, err)

	sum, err := svc.Summary(ctx, w.ID, dto.WorkerRangeFilter{From: "2026-07-01", To: "2026-07-31"})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.PresentDays)
	assert.Equal(t, "400.00", sum.TotalSalary)
}

func TestWorkerEntriesKeepDescription(t *testing.T) {
	svc, w, _ := newTestWorkerLedger(t)
	desc := "Diwali advance"

	resp, err := svc.CreateAdvance(context.Background(), w.ID, dto.SaveWorkerEntryRequest{
		Amount:      "200",
		Date:        "2026-08-12",
		Description: &desc,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Description)
	assert.Equal(t, "Diwali advance", *resp.Description)

	list, err := svc.ListAdvances(context.Background(), w.ID, dto.WorkerRangeFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "200.00", list[0].Amount)
}
