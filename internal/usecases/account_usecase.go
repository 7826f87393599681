package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/domain/repositories"
	"fudys.backend/pkg/crypto"
)

// AccountUsecase handles profile, role and account-removal operations
type AccountUsecase struct {
	userRepo       repositories.UserRepository
	restaurantRepo repositories.RestaurantRepository
	subRepo        repositories.SubscriptionRepository
	productRepo    repositories.ProductRepository
	methodRepo     repositories.PaymentMethodRepository
	optionRepo     repositories.DeliveryOptionRepository
	hourRepo       repositories.OpeningHourRepository
	resetRepo      repositories.PasswordResetRepository
	saleRepo       repositories.SaleRepository
	uow            repositories.UnitOfWork
}

// NewAccountUsecase creates a new account usecase
func NewAccountUsecase(
	userRepo repositories.UserRepository,
	restaurantRepo repositories.RestaurantRepository,
	subRepo repositories.SubscriptionRepository,
	productRepo repositories.ProductRepository,
	methodRepo repositories.PaymentMethodRepository,
	optionRepo repositories.DeliveryOptionRepository,
	hourRepo repositories.OpeningHourRepository,
	resetRepo repositories.PasswordResetRepository,
	saleRepo repositories.SaleRepository,
	uow repositories.UnitOfWork,
) *AccountUsecase {
	return &AccountUsecase{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		subRepo:        subRepo,
		productRepo:    productRepo,
		methodRepo:     methodRepo,
		optionRepo:     optionRepo,
		hourRepo:       hourRepo,
		resetRepo:      resetRepo,
		saleRepo:       saleRepo,
		uow:            uow,
	}
}

// GetProfile returns the acting user's account
func (u *AccountUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial profile update. A new email must not
// collide with another account.
func (u *AccountUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	if input.Empty() {
		return nil, domainerrors.BadRequest("no fields to update")
	}

	if input.Email != nil {
		other, err := u.userRepo.GetByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, domainerrors.Conflict("email already registered")
		}
	}

	if err := u.userRepo.UpdateProfile(ctx, userID, input); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, userID)
}

// ListUsers returns every account; super admin only, enforced at the
// route.
func (u *AccountUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}

// ChangeRole sets another user's role
func (u *AccountUsecase) ChangeRole(ctx context.Context, userID uuid.UUID, role string) (*entities.User, error) {
	parsed, err := entities.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if err := u.userRepo.UpdateRole(ctx, userID, parsed); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, userID)
}

// GetMyRestaurant returns the store owned by the acting user
func (u *AccountUsecase) GetMyRestaurant(ctx context.Context, userID uuid.UUID) (*entities.Restaurant, error) {
	return u.restaurantRepo.GetByOwnerID(ctx, userID)
}

// DeleteAccount removes the acting user's own account after re-verifying
// their password. The stored hash must match before any data is touched.
func (u *AccountUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !crypto.CheckPassword(password, user.PasswordHash) {
		return domainerrors.ErrInvalidPassword
	}
	return u.cascadeDelete(ctx, userID)
}

// DeleteUser removes any account; super admin only, enforced at the
// route.
func (u *AccountUsecase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.cascadeDelete(ctx, userID)
}

// cascadeDelete removes a user and everything hanging off it in one
// transaction: the owned store with its catalog, schedule, payment and
// delivery setup, subscriptions and sales, plus the user's reset tokens
// and purchase history. Children go before parents so the cascade never
// strands a row.
func (u *AccountUsecase) cascadeDelete(ctx context.Context, userID uuid.UUID) error {
	return u.uow.Do(ctx, func(ctx context.Context) error {
		restaurant, err := u.restaurantRepo.GetByOwnerID(ctx, userID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		if restaurant != nil {
			if err := u.saleRepo.DeleteByRestaurant(ctx, restaurant.ID); err != nil {
				return err
			}
			if err := u.subRepo.DeleteByRestaurant(ctx, restaurant.ID); err != nil {
				return err
			}
			if err := u.hourRepo.DeleteByRestaurant(ctx, restaurant.ID); err != nil {
				return err
			}
			if err := u.methodRepo.DeleteByRestaurant(ctx, restaurant.ID); err != nil {
				return err
			}
			if err := u.optionRepo.DeleteByRestaurant(ctx, restaurant.ID); err != nil {
				return err
			}
			if err := u.productRepo.DeleteByRestaurant(ctx, restaurant.ID); err != nil {
				return err
			}
			if err := u.restaurantRepo.Delete(ctx, restaurant.ID); err != nil {
				return err
			}
		}

		if err := u.saleRepo.DeleteByBuyer(ctx, userID); err != nil {
			return err
		}
		if err := u.resetRepo.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return u.userRepo.Delete(ctx, userID)
	})
}
