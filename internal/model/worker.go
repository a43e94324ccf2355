package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Worker is a daily-wage employee paid per present day.
type Worker struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string          `gorm:"not null"`
	ContactNumber *string
	PerDaySalary  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DisplayOrder  int             `gorm:"not null;default:0;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (w *Worker) Position() int     { return w.DisplayOrder }
func (w *Worker) SetPosition(p int) { w.DisplayOrder = p }

// WorkerAttendance holds at most one record per (worker, date).
// Toggling flips IsPresent on an existing record or creates one marked
// present; there is no delete path — "absent" and "no record" both count
// as not present for payroll.
type WorkerAttendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_worker_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_worker_date"`
	IsPresent bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkerAdvance is money handed to a worker ahead of payday.
// Advances are immutable once recorded.
type WorkerAdvance struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date        time.Time       `gorm:"type:date;index;not null"`
	Description *string
	CreatedAt   time.Time
}

// WorkerSalaryPayment is a settled salary payment. Immutable once recorded.
type WorkerSalaryPayment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date        time.Time       `gorm:"type:date;index;not null"`
	Description *string
	CreatedAt   time.Time
}
