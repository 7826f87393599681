package usecases_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/usecases"
)

func newResetUsecaseForTest(userRepo *MockUserRepository, resetRepo *MockPasswordResetRepository, uow *MockUnitOfWork, mailer *MockMailer) *usecases.PasswordResetUsecase {
	return usecases.NewPasswordResetUsecase(userRepo, resetRepo, uow, mailer, "https://fudys.app", testBcryptCost)
}

func TestPasswordResetUsecase_RequestReset_SendsTokenLink(t *testing.T) {
	userRepo := new(MockUserRepository)
	resetRepo := new(MockPasswordResetRepository)
	mailer := new(MockMailer)
	uc := newResetUsecaseForTest(userRepo, resetRepo, new(MockUnitOfWork), mailer)

	userID := uuid.New()
	userRepo.On("GetByEmail", mock.Anything, "ana@fudys.app").Return(&entities.User{
		ID: userID, Name: "Ana", Email: "ana@fudys.app",
	}, nil).Once()

	var storedToken string
	resetRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.PasswordReset) bool {
		storedToken = r.Token
		return r.UserID == userID && len(r.Token) == 32 && !r.Used
	})).Return(nil).Once()

	mailer.On("Send", mock.Anything, "ana@fudys.app", mock.Anything, mock.MatchedBy(func(body string) bool {
		return storedToken != "" && strings.Contains(body, storedToken)
	})).Return(nil).Once()

	assert.NoError(t, uc.RequestReset(context.Background(), "ana@fudys.app"))
	resetRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestPasswordResetUsecase_RequestReset_UnknownEmailSilent(t *testing.T) {
	userRepo := new(MockUserRepository)
	resetRepo := new(MockPasswordResetRepository)
	mailer := new(MockMailer)
	uc := newResetUsecaseForTest(userRepo, resetRepo, new(MockUnitOfWork), mailer)

	userRepo.On("GetByEmail", mock.Anything, "ghost@fudys.app").Return(nil, domainerrors.ErrNotFound).Once()

	assert.NoError(t, uc.RequestReset(context.Background(), "ghost@fudys.app"))
	resetRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPasswordResetUsecase_RequestReset_MailFailurePropagates(t *testing.T) {
	userRepo := new(MockUserRepository)
	resetRepo := new(MockPasswordResetRepository)
	mailer := new(MockMailer)
	uc := newResetUsecaseForTest(userRepo, resetRepo, new(MockUnitOfWork), mailer)

	userRepo.On("GetByEmail", mock.Anything, "ana@fudys.app").Return(&entities.User{ID: uuid.New(), Email: "ana@fudys.app"}, nil).Once()
	resetRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	assert.ErrorIs(t, uc.RequestReset(context.Background(), "ana@fudys.app"), assert.AnError)
}

func TestPasswordResetUsecase_ResetPassword_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	resetRepo := new(MockPasswordResetRepository)
	uow := new(MockUnitOfWork)
	uc := newResetUsecaseForTest(userRepo, resetRepo, uow, new(MockMailer))

	userID := uuid.New()
	resetID := uuid.New()
	resetRepo.On("GetByToken", mock.Anything, "tok").Return(&entities.PasswordReset{
		ID:        resetID,
		UserID:    userID,
		Token:     "tok",
		CreatedAt: time.Now().Add(-10 * time.Minute),
	}, nil).Once()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	userRepo.On("UpdatePassword", mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
		return hash != "newsecret"
	})).Return(nil).Once()
	resetRepo.On("MarkUsed", mock.Anything, resetID).Return(nil).Once()

	err := uc.ResetPassword(context.Background(), &entities.ResetPasswordInput{Token: "tok", NewPassword: "newsecret"})
	assert.NoError(t, err)
	resetRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestPasswordResetUsecase_ResetPassword_Invalid(t *testing.T) {
	resetRepo := new(MockPasswordResetRepository)
	uc := newResetUsecaseForTest(new(MockUserRepository), resetRepo, new(MockUnitOfWork), new(MockMailer))

	resetRepo.On("GetByToken", mock.Anything, "missing").Return(nil, domainerrors.ErrNotFound).Once()

	err := uc.ResetPassword(context.Background(), &entities.ResetPasswordInput{Token: "missing", NewPassword: "newsecret"})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestPasswordResetUsecase_ResetPassword_Used(t *testing.T) {
	resetRepo := new(MockPasswordResetRepository)
	uc := newResetUsecaseForTest(new(MockUserRepository), resetRepo, new(MockUnitOfWork), new(MockMailer))

	resetRepo.On("GetByToken", mock.Anything, "tok").Return(&entities.PasswordReset{
		ID:        uuid.New(),
		Used:      true,
		CreatedAt: time.Now(),
	}, nil).Once()

	err := uc.ResetPassword(context.Background(), &entities.ResetPasswordInput{Token: "tok", NewPassword: "newsecret"})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenUsed)
}

func TestPasswordResetUsecase_ResetPassword_Expired(t *testing.T) {
	resetRepo := new(MockPasswordResetRepository)
	uc := newResetUsecaseForTest(new(MockUserRepository), resetRepo, new(MockUnitOfWork), new(MockMailer))

	resetRepo.On("GetByToken", mock.Anything, "tok").Return(&entities.PasswordReset{
		ID:        uuid.New(),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}, nil).Once()

	err := uc.ResetPassword(context.Background(), &entities.ResetPasswordInput{Token: "tok", NewPassword: "newsecret"})
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenExpired)
}
