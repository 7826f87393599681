package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         string    `gorm:"type:varchar(50);not null"`
	Cedula       *string   `gorm:"type:varchar(50)"`
	Phone        *string   `gorm:"type:varchar(50)"`
	Bank         *string   `gorm:"type:varchar(100)"`
	IsActive     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
