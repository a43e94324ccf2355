package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is a raw-material purchase from a shop.
// Quantity is free text ("2 bag", "5 kg") — the original records it that way
// and no arithmetic is performed on it. RemainingAmount = TotalBill - PaidAmount.
type Purchase struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShopID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	ItemID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity        string          `gorm:"not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date            time.Time       `gorm:"type:date;index;not null"`
	PurchaseTime    string          `gorm:"not null"` // HH:MM
	TotalBill       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Shop *Shop `gorm:"foreignKey:ShopID"`
	Item *Item `gorm:"foreignKey:ItemID"`
}
