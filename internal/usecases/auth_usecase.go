package usecases

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/domain/repositories"
	"fudys.backend/pkg/crypto"
	"fudys.backend/pkg/jwt"
)

// AuthUsecase handles registration and login
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.Service
	bcryptCost int
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.Service, bcryptCost int) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account and logs it in. An omitted role defaults to
// customer; unknown role strings are rejected.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	role := entities.RoleCustomer
	if input.Role != "" {
		parsed, err := entities.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPasswordCost(input.Password, u.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if input.Phone != "" {
		user.Phone = null.StringFrom(input.Phone)
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.respond(user)
}

// Login verifies credentials and issues a bearer token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return u.respond(user)
}

func (u *AuthUsecase) respond(user *entities.User) (*entities.AuthResponse, error) {
	token, err := u.jwtService.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}
