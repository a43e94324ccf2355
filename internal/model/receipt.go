package model

import (
	"time"

	"github.com/google/uuid"
)

// Receipt kinds — one per printable document the business hands out.
const (
	ReceiptDailySale    = "daily_sale"
	ReceiptPurchase     = "purchase"
	ReceiptBulkSale     = "bulk_sale"
	ReceiptWorkerReport = "worker_report"
)

// Receipt render states.
const (
	ReceiptPending   = "pending"
	ReceiptGenerated = "generated"
	ReceiptFailed    = "failed"
)

// Receipt tracks the render state of one asynchronously generated PDF.
// The worker pool picks pending receipts off the queue, renders them into
// PDFStoragePath and records the outcome here. Failed renders are retried
// by the retry cron until retry_count hits the cap, then parked in the DLQ.
type Receipt struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind        string    `gorm:"not null;index"`
	RefID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"not null;default:'pending';index"`
	FilePath    *string
	RetryCount  int `gorm:"not null;default:0"`
	NextRetryAt *time.Time
	LastError   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
