package worker

// retry_cron.go
// Background goroutine that periodically re-enqueues failed receipts whose
// next_retry_at is in the past. Rendering itself stays in the worker pool —
// the cron only feeds the queue.

import (
	"context"
	"time"

	"github.com/newstarted0004/surti-khaman/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds the dependencies for the retry goroutine.
type RetryCronConfig struct {
	ReceiptRepo repository.ReceiptRepository
	Dispatcher  *Dispatcher
}

// StartRetryCron launches a background goroutine that ticks every 30s,
// queries failed receipts due for another attempt and puts them back on the
// queue. It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	now := time.Now()
	receipts, err := cfg.ReceiptRepo.ListPendingRetries(ctx, now, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query pending retries")
		return
	}
	if len(receipts) == 0 {
		return
	}

	log.Info().Int("count", len(receipts)).Msg("retry_cron: re-enqueueing failed receipts")

	for i := range receipts {
		rec := &receipts[i]

		payload := ReceiptJobPayload{ReceiptID: rec.ID.String()}
		if err := cfg.Dispatcher.EnqueueReceipt(ctx, payload); err != nil {
			log.Error().Err(err).Str("receipt_id", rec.ID.String()).Msg("retry_cron: enqueue failed")
			continue
		}

		// Clear the schedule so the next tick doesn't re-enqueue the same
		// receipt while it sits in the queue. The worker sets a fresh
		// next_retry_at if the render fails again.
		rec.NextRetryAt = nil
		if err := cfg.ReceiptRepo.Update(ctx, rec); err != nil {
			log.Error().Err(err).Str("receipt_id", rec.ID.String()).Msg("retry_cron: failed to clear retry schedule")
		}
	}
}
