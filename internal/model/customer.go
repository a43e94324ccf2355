package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a wholesale buyer (a shop that purchases in bulk).
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShopName      string    `gorm:"not null"`
	OwnerName     *string
	ContactNumber *string
	DisplayOrder  int `gorm:"not null;default:0;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Customer) Position() int     { return c.DisplayOrder }
func (c *Customer) SetPosition(p int) { c.DisplayOrder = p }
