package models

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CustomURL   string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Whatsapp    string    `gorm:"type:varchar(50)"`
	LogoURL     string    `gorm:"type:varchar(255)"`
	BannerURL   string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
