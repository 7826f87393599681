package models

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryOption struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_restaurant_type,unique"`
	Type         string    `gorm:"type:varchar(50);not null;index:idx_delivery_restaurant_type,unique"`
	Price        *float64  `gorm:"type:decimal(10,2)"`
	IsActive     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
