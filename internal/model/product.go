package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable product (khaman, sev, etc.). Pricing lives on the
// individual bulk sale, not here — the shop negotiates per order.
type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Product) Position() int     { return p.DisplayOrder }
func (p *Product) SetPosition(n int) { p.DisplayOrder = n }
