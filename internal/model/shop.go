package model

import (
	"time"

	"github.com/google/uuid"
)

// Shop is a supplier we buy raw material from.
type Shop struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"not null"`
	ContactNumber *string
	DisplayOrder  int `gorm:"not null;default:0;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *Shop) Position() int     { return s.DisplayOrder }
func (s *Shop) SetPosition(p int) { s.DisplayOrder = p }
