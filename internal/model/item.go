package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is a raw material we purchase (besan, oil, gas cylinder, ...).
type Item struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Unit         string    `gorm:"not null;default:'KG'"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (i *Item) Position() int     { return i.DisplayOrder }
func (i *Item) SetPosition(p int) { i.DisplayOrder = p }
