package entities

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenTTL is how long a password-reset token stays valid.
const ResetTokenTTL = time.Hour

// PasswordReset is a single-use password-reset token.
type PasswordReset struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Token     string    `json:"-"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the token is older than its TTL.
func (p *PasswordReset) Expired(now time.Time) bool {
	return now.Sub(p.CreatedAt) > ResetTokenTTL
}

// RecoverPasswordInput is the payload for requesting a reset.
type RecoverPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput is the payload for consuming a reset token.
type ResetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
