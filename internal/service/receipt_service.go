package service

import (
	"context"
	"errors"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/dto"
	"github.com/newstarted0004/surti-khaman/internal/model"
	"github.com/newstarted0004/surti-khaman/internal/repository"
	"github.com/newstarted0004/surti-khaman/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrReceiptNotReady is returned when a download is requested before the
// worker pool has rendered the PDF.
var ErrReceiptNotReady = errors.New("receipt not generated yet")

// ReceiptService creates receipt records and hands rendering to the worker
// pool. Rendering is always async: Create returns immediately with a pending
// receipt and the client polls (or downloads once status is generated).
type ReceiptService interface {
	Create(ctx context.Context, req dto.CreateReceiptRequest) (*dto.ReceiptResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ReceiptResponse, error)
	// Download resolves the rendered PDF's path on disk.
	Download(ctx context.Context, id uuid.UUID) (string, error)
}

type receiptService struct {
	receipts   repository.ReceiptRepository
	sales      repository.DailySaleRepository
	bulkSales  repository.BulkSaleRepository
	purchases  repository.PurchaseRepository
	workers    repository.ReferenceRepository[model.Worker, *model.Worker]
	dispatcher *worker.Dispatcher
}

func NewReceiptService(
	receipts repository.ReceiptRepository,
	sales repository.DailySaleRepository,
	bulkSales repository.BulkSaleRepository,
	purchases repository.PurchaseRepository,
	workers repository.ReferenceRepository[model.Worker, *model.Worker],
	dispatcher *worker.Dispatcher,
) ReceiptService {
	return &receiptService{
		receipts:   receipts,
		sales:      sales,
		bulkSales:  bulkSales,
		purchases:  purchases,
		workers:    workers,
		dispatcher: dispatcher,
	}
}

func (s *receiptService) Create(ctx context.Context, req dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	refID, err := uuid.Parse(req.RefID)
	if err != nil {
		return nil, err
	}

	// The referenced record must exist before we commit to rendering it.
	if err := s.checkRef(ctx, req.Kind, refID); err != nil {
		return nil, err
	}

	rec := &model.Receipt{
		Kind:   req.Kind,
		RefID:  refID,
		Status: model.ReceiptPending,
	}
	if err := s.receipts.Create(ctx, rec); err != nil {
		return nil, err
	}

	payload := worker.ReceiptJobPayload{ReceiptID: rec.ID.String()}
	if err := s.dispatcher.EnqueueReceipt(ctx, payload); err != nil {
		// The receipt row survives; the retry cron will not pick it up
		// (status pending) so log loudly.
		log.Error().Err(err).Str("receipt_id", rec.ID.String()).Msg("receipt: failed to enqueue render job")
		return nil, err
	}

	return receiptToResponse(rec), nil
}

func (s *receiptService) Get(ctx context.Context, id uuid.UUID) (*dto.ReceiptResponse, error) {
	rec, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return receiptToResponse(rec), nil
}

func (s *receiptService) Download(ctx context.Context, id uuid.UUID) (string, error) {
	rec, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if rec.Status != model.ReceiptGenerated || rec.FilePath == nil {
		return "", ErrReceiptNotReady
	}
	return *rec.FilePath, nil
}

func (s *receiptService) checkRef(ctx context.Context, kind string, refID uuid.UUID) error {
	switch kind {
	case model.ReceiptDailySale:
		_, err := s.sales.FindByID(ctx, refID)
		return err
	case model.ReceiptPurchase:
		_, err := s.purchases.FindByID(ctx, refID)
		return err
	case model.ReceiptBulkSale:
		_, err := s.bulkSales.FindByID(ctx, refID)
		return err
	case model.ReceiptWorkerReport:
		_, err := s.workers.FindByID(ctx, refID)
		return err
	default:
		return errors.New("unknown receipt kind")
	}
}

func receiptToResponse(rec *model.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:         rec.ID.String(),
		Kind:       rec.Kind,
		RefID:      rec.RefID.String(),
		Status:     rec.Status,
		RetryCount: rec.RetryCount,
		LastError:  rec.LastError,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}
