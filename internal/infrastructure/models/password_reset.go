package models

import (
	"time"

	"github.com/google/uuid"
)

type PasswordReset struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
