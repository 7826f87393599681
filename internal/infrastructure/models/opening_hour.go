package models

import (
	"time"

	"github.com/google/uuid"
)

type OpeningHour struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	DayOfWeek    string    `gorm:"type:varchar(20);not null"`
	OpenTime     string    `gorm:"type:varchar(8);not null"`
	CloseTime    string    `gorm:"type:varchar(8);not null"`
	CreatedAt    time.Time
}
