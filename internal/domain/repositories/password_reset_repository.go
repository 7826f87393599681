package repositories

import (
	"context"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
)

// PasswordResetRepository defines reset token data operations
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entities.PasswordReset) error
	GetByToken(ctx context.Context, token string) (*entities.PasswordReset, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
