package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/domain/ports"
	"fudys.backend/internal/domain/repositories"
	"fudys.backend/pkg/crypto"
	"fudys.backend/pkg/logger"
)

// PasswordResetUsecase handles the recover/reset token lifecycle
type PasswordResetUsecase struct {
	userRepo    repositories.UserRepository
	resetRepo   repositories.PasswordResetRepository
	uow         repositories.UnitOfWork
	mailer      ports.Mailer
	frontendURL string
	bcryptCost  int
	now         func() time.Time
}

// NewPasswordResetUsecase creates a new password reset usecase
func NewPasswordResetUsecase(
	userRepo repositories.UserRepository,
	resetRepo repositories.PasswordResetRepository,
	uow repositories.UnitOfWork,
	mailer ports.Mailer,
	frontendURL string,
	bcryptCost int,
) *PasswordResetUsecase {
	return &PasswordResetUsecase{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		uow:         uow,
		mailer:      mailer,
		frontendURL: frontendURL,
		bcryptCost:  bcryptCost,
		now:         time.Now,
	}
}

// RequestReset issues a reset token and mails the recovery link. An
// unknown email returns success all the same so the endpoint does not
// reveal which addresses have accounts.
func (u *PasswordResetUsecase) RequestReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := crypto.GenerateResetToken()
	if err != nil {
		return err
	}

	reset := &entities.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		CreatedAt: u.now(),
	}
	if err := u.resetRepo.Create(ctx, reset); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", u.frontendURL, token)
	body := fmt.Sprintf(
		"<p>Hola %s,</p><p>Recibimos una solicitud para restablecer tu contraseña.</p>"+
			"<p><a href=\"%s\">Restablecer contraseña</a></p>"+
			"<p>El enlace vence en 1 hora. Si no fuiste tú, ignora este correo.</p>",
		user.Name, link)

	if err := u.mailer.Send(ctx, user.Email, "Recupera tu contraseña", body); err != nil {
		logger.Error(ctx, "failed to send reset email", zap.Error(err))
		return fmt.Errorf("sending reset email: %w", err)
	}
	return nil
}

// ResetPassword redeems a token and replaces the user's password. The
// token burns on use; replaying it fails.
func (u *PasswordResetUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	reset, err := u.resetRepo.GetByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}
		return err
	}
	if reset.Used {
		return domainerrors.ErrResetTokenUsed
	}
	if reset.Expired(u.now()) {
		return domainerrors.ErrResetTokenExpired
	}

	passwordHash, err := crypto.HashPasswordCost(input.NewPassword, u.bcryptCost)
	if err != nil {
		return err
	}

	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.UpdatePassword(ctx, reset.UserID, passwordHash); err != nil {
			return err
		}
		return u.resetRepo.MarkUsed(ctx, reset.ID)
	})
}
