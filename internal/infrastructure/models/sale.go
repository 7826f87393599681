package models

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        *string   `gorm:"type:uuid;index"`
	TotalUSD      float64   `gorm:"type:decimal(10,2);not null;default:0"`
	TotalVES      float64   `gorm:"type:decimal(14,2);not null;default:0"`
	CommissionUSD float64   `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt     time.Time
}

type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID *string   `gorm:"type:uuid"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"not null;default:1"`
	PriceUSD  float64   `gorm:"type:decimal(10,2);not null;default:0"`
}
