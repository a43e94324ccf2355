package worker

// receipt_worker.go
// Processes PDF render jobs from QueueReceipts. Loads the receipt row,
// fetches the referenced record, renders the PDF and records the outcome.
// Failed renders get a retry schedule with exponential backoff (max 3
// attempts); exhausted receipts are parked in the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/infra"
	"github.com/newstarted0004/surti-khaman/internal/ledger"
	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// MaxReceiptRetries caps retry attempts before a receipt moves to the DLQ.
const MaxReceiptRetries = 3

// ReceiptJobPayload is the job envelope sent to QueueReceipts.
type ReceiptJobPayload struct {
	ReceiptID string `json:"receipt_id"`
}

// ReceiptWorker renders receipt PDFs asynchronously.
type ReceiptWorker struct {
	receipts  repository.ReceiptRepository
	sales     repository.DailySaleRepository
	bulkSales repository.BulkSaleRepository
	purchases repository.PurchaseRepository
	workers   repository.ReferenceRepository[model.Worker, *model.Worker]
	entries   repository.WorkerLedgerRepository
	pdf       *infra.PDFGenerator
	rdb       *redis.Client
	now       func() time.Time
}

func NewReceiptWorker(
	receipts repository.ReceiptRepository,
	sales repository.DailySaleRepository,
	bulkSales repository.BulkSaleRepository,
	purchases repository.PurchaseRepository,
	workers repository.ReferenceRepository[model.Worker, *model.Worker],
	entries repository.WorkerLedgerRepository,
	pdf *infra.PDFGenerator,
	rdb *redis.Client,
) *ReceiptWorker {
	return &ReceiptWorker{
		receipts:  receipts,
		sales:     sales,
		bulkSales: bulkSales,
		purchases: purchases,
		workers:   workers,
		entries:   entries,
		pdf:       pdf,
		rdb:       rdb,
		now:       time.Now,
	}
}

// Process handles a single receipt job:
//  1. Parse ReceiptJobPayload from the job envelope
//  2. Load the receipt row
//  3. Render the PDF for the referenced record
//  4. Record success, or schedule a retry / park in the DLQ
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}

	receiptID, err := uuid.Parse(payload.ReceiptID)
	if err != nil {
		log.Error().Str("receipt_id", payload.ReceiptID).Msg("receipt_worker: invalid receipt_id")
		return
	}

	rec, err := w.receipts.FindByID(ctx, receiptID)
	if err != nil {
		log.Error().Err(err).Str("receipt_id", payload.ReceiptID).Msg("receipt_worker: receipt not found")
		return
	}
	if rec.Status == model.ReceiptGenerated {
		return // already rendered, nothing to do
	}

	filePath, renderErr := w.render(ctx, rec)
	if renderErr != nil {
		w.recordFailure(ctx, rec, renderErr)
		return
	}

	rec.Status = model.ReceiptGenerated
	rec.FilePath = &filePath
	rec.NextRetryAt = nil
	rec.LastError = nil
	if err := w.receipts.Update(ctx, rec); err != nil {
		log.Error().Err(err).Str("receipt_id", rec.ID.String()).Msg("receipt_worker: failed to record success")
		return
	}
	log.Info().
		Str("receipt_id", rec.ID.String()).
		Str("kind", rec.Kind).
		Str("pdf", filePath).
		Msg("receipt_worker: PDF generated")
}

func (w *ReceiptWorker) render(ctx context.Context, rec *model.Receipt) (string, error) {
	switch rec.Kind {
	case model.ReceiptDailySale:
		sale, err := w.sales.FindByID(ctx, rec.RefID)
		if err != nil {
			return "", err
		}
		return w.pdf.GenerateDailySalePDF(sale)

	case model.ReceiptPurchase:
		p, err := w.purchases.FindByID(ctx, rec.RefID)
		if err != nil {
			return "", err
		}
		return w.pdf.GeneratePurchasePDF(p)

	case model.ReceiptBulkSale:
		b, err := w.bulkSales.FindByID(ctx, rec.RefID)
		if err != nil {
			return "", err
		}
		return w.pdf.GenerateBulkSalePDF(b)

	case model.ReceiptWorkerReport:
		return w.renderWorkerReport(ctx, rec.RefID)

	default:
		return "", fmt.Errorf("receipt_worker: unknown receipt kind %q", rec.Kind)
	}
}

// renderWorkerReport reconciles the worker's current month and renders the
// payroll report.
func (w *ReceiptWorker) renderWorkerReport(ctx context.Context, workerID uuid.UUID) (string, error) {
	wk, err := w.workers.FindByID(ctx, workerID)
	if err != nil {
		return "", err
	}

	r := ledger.MonthRange(w.now())

	attendance, err := w.entries.ListAttendance(ctx, workerID, r.Start, r.End)
	if err != nil {
		return "", err
	}
	advances, err := w.entries.ListAdvances(ctx, workerID, r.Start, r.End)
	if err != nil {
		return "", err
	}
	payments, err := w.entries.ListPayments(ctx, workerID, r.Start, r.End)
	if err != nil {
		return "", err
	}

	days := make([]ledger.AttendanceDay, 0, len(attendance))
	for _, a := range attendance {
		days = append(days, ledger.AttendanceDay{Date: a.Date, Present: a.IsPresent})
	}
	advEntries := make([]ledger.Entry, 0, len(advances))
	for _, a := range advances {
		advEntries = append(advEntries, ledger.Entry{Date: a.Date, Amount: a.Amount})
	}
	payEntries := make([]ledger.Entry, 0, len(payments))
	for _, p := range payments {
		payEntries = append(payEntries, ledger.Entry{Date: p.Date, Amount: p.Amount})
	}

	sum := ledger.SummarizeWorker(wk.PerDaySalary, days, advEntries, payEntries, r)
	return w.pdf.GenerateWorkerReportPDF(wk, sum, r)
}

// recordFailure increments the retry count, schedules the next attempt, and
// parks the receipt in the DLQ once retries are exhausted.
func (w *ReceiptWorker) recordFailure(ctx context.Context, rec *model.Receipt, cause error) {
	rec.Status = model.ReceiptFailed
	rec.RetryCount++
	errMsg := cause.Error()
	rec.LastError = &errMsg

	if rec.RetryCount >= MaxReceiptRetries {
		rec.NextRetryAt = nil
		log.Error().
			Str("receipt_id", rec.ID.String()).
			Int("retries", rec.RetryCount).
			Err(cause).
			Msg("receipt_worker: max retries exceeded, moving to DLQ")

		payload, _ := json.Marshal(ReceiptJobPayload{ReceiptID: rec.ID.String()})
		SendToDLQ(ctx, w.rdb, QueueReceipts, "receipt", payload, errMsg, rec.RetryCount)
	} else {
		next := w.now().Add(retryBackoff(rec.RetryCount))
		rec.NextRetryAt = &next
		log.Warn().
			Str("receipt_id", rec.ID.String()).
			Int("retry_count", rec.RetryCount).
			Time("next_retry_at", next).
			Err(cause).
			Msg("receipt_worker: render failed, scheduled retry")
	}

	if err := w.receipts.Update(ctx, rec); err != nil {
		log.Error().Err(err).Str("receipt_id", rec.ID.String()).Msg("receipt_worker: failed to record failure")
	}
}

// retryBackoff returns the wait before the next attempt: 1s, 2s, 4s ...
func retryBackoff(retryCount int) time.Duration {
	return time.Duration(1<<uint(retryCount-1)) * time.Second
}
