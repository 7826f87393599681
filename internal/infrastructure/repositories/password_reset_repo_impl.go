package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/infrastructure/models"
)

// PasswordResetRepository implements reset token data operations
type PasswordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Create stores a new reset token
func (r *PasswordResetRepository) Create(ctx context.Context, reset *entities.PasswordReset) error {
	if reset.ID == uuid.Nil {
		reset.ID = uuid.New()
	}
	m := &models.PasswordReset{
		ID:        reset.ID,
		UserID:    reset.UserID,
		Token:     reset.Token,
		Used:      reset.Used,
		CreatedAt: reset.CreatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// GetByToken looks up a reset token by its value
func (r *PasswordResetRepository) GetByToken(ctx context.Context, token string) (*entities.PasswordReset, error) {
	var m models.PasswordReset
	if err := GetDB(ctx, r.db).Where("token = ?", token).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.PasswordReset{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		Used:      m.Used,
		CreatedAt: m.CreatedAt,
	}, nil
}

// MarkUsed burns a token so it cannot be redeemed again
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Model(&models.PasswordReset{}).Where("id = ?", id).
		Update("used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUser removes all reset tokens of a user
func (r *PasswordResetRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).Delete(&models.PasswordReset{}, "user_id = ?", userID).Error
}
