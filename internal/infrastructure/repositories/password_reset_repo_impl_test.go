package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
)

func TestPasswordResetRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createPasswordResetTable(t, db)
	repo := NewPasswordResetRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	reset := &entities.PasswordReset{
		UserID:    userID,
		Token:     "abcdef0123456789abcdef0123456789",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, reset))
	require.NotEqual(t, uuid.Nil, reset.ID)

	got, err := repo.GetByToken(ctx, reset.Token)
	require.NoError(t, err)
	require.Equal(t, userID, got.UserID)
	require.False(t, got.Used)

	require.NoError(t, repo.MarkUsed(ctx, got.ID))
	got, err = repo.GetByToken(ctx, reset.Token)
	require.NoError(t, err)
	require.True(t, got.Used)

	require.NoError(t, repo.DeleteByUser(ctx, userID))
	_, err = repo.GetByToken(ctx, reset.Token)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPasswordResetRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createPasswordResetTable(t, db)
	repo := NewPasswordResetRepository(db)
	ctx := context.Background()

	_, err := repo.GetByToken(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.MarkUsed(ctx, uuid.New()), domainerrors.ErrNotFound)
}

func TestPasswordResetRepository_TokenUnique(t *testing.T) {
	db := newTestDB(t)
	createPasswordResetTable(t, db)
	repo := NewPasswordResetRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.PasswordReset{UserID: uuid.New(), Token: "tok", CreatedAt: time.Now()}))
	require.Error(t, repo.Create(ctx, &entities.PasswordReset{UserID: uuid.New(), Token: "tok", CreatedAt: time.Now()}))
}
