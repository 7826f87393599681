package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/domain/repositories"
)

// TrialDays is the free subscription window a new store starts with.
const TrialDays = 7

// DefaultLogoURL backs stores that never uploaded a logo.
const DefaultLogoURL = "/uploads/logo.png"

// RestaurantUsecase handles store registration and storefront reads
type RestaurantUsecase struct {
	restaurantRepo repositories.RestaurantRepository
	userRepo       repositories.UserRepository
	subRepo        repositories.SubscriptionRepository
	productRepo    repositories.ProductRepository
	methodRepo     repositories.PaymentMethodRepository
	optionRepo     repositories.DeliveryOptionRepository
	hourRepo       repositories.OpeningHourRepository
	uow            repositories.UnitOfWork
}

// NewRestaurantUsecase creates a new restaurant usecase
func NewRestaurantUsecase(
	restaurantRepo repositories.RestaurantRepository,
	userRepo repositories.UserRepository,
	subRepo repositories.SubscriptionRepository,
	productRepo repositories.ProductRepository,
	methodRepo repositories.PaymentMethodRepository,
	optionRepo repositories.DeliveryOptionRepository,
	hourRepo repositories.OpeningHourRepository,
	uow repositories.UnitOfWork,
) *RestaurantUsecase {
	return &RestaurantUsecase{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		subRepo:        subRepo,
		productRepo:    productRepo,
		methodRepo:     methodRepo,
		optionRepo:     optionRepo,
		hourRepo:       hourRepo,
		uow:            uow,
	}
}

// Create registers a store for the acting user. The caller becomes a
// store owner and the store starts on a trial subscription; the whole
// thing commits or nothing does.
func (u *RestaurantUsecase) Create(ctx context.Context, actor Actor, input *entities.CreateRestaurantInput) (*entities.Restaurant, error) {
	if _, err := u.restaurantRepo.GetByOwnerID(ctx, actor.ID); err == nil {
		return nil, domainerrors.Conflict("user already owns a restaurant")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	taken, err := u.restaurantRepo.CustomURLTaken(ctx, input.CustomURL, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.Conflict("custom url already in use")
	}

	now := time.Now()
	restaurant := &entities.Restaurant{
		OwnerID:     actor.ID,
		Name:        input.Name,
		Description: input.Description,
		CustomURL:   input.CustomURL,
		Whatsapp:    input.Whatsapp,
		LogoURL:     input.LogoURL,
		BannerURL:   input.BannerURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.restaurantRepo.Create(ctx, restaurant); err != nil {
			return err
		}
		if actor.Role != entities.RoleSuperAdmin {
			if err := u.userRepo.UpdateRole(ctx, actor.ID, entities.RoleStoreOwner); err != nil {
				return err
			}
		}
		return u.subRepo.Create(ctx, &entities.Subscription{
			RestaurantID: restaurant.ID,
			StartDate:    now,
			EndDate:      now.AddDate(0, 0, TrialDays),
			IsActive:     true,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

// List returns every registered store
func (u *RestaurantUsecase) List(ctx context.Context) ([]*entities.Restaurant, error) {
	return u.restaurantRepo.List(ctx)
}

// GetStorefront composes the public store page by slug: catalog in
// display order, current subscription and schedule.
func (u *RestaurantUsecase) GetStorefront(ctx context.Context, customURL string) (*entities.Storefront, error) {
	restaurant, err := u.restaurantRepo.GetByCustomURL(ctx, customURL)
	if err != nil {
		return nil, err
	}
	if restaurant.LogoURL == "" {
		restaurant.LogoURL = DefaultLogoURL
	}

	products, err := u.productRepo.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}
	hours, err := u.hourRepo.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	sub, err := u.subRepo.GetActive(ctx, restaurant.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	return &entities.Storefront{
		Restaurant:   *restaurant,
		Products:     products,
		Subscription: sub,
		OpeningHours: hours,
	}, nil
}

// GetConfig returns the owner dashboard view of a store
func (u *RestaurantUsecase) GetConfig(ctx context.Context, actor Actor, restaurantID uuid.UUID) (*entities.RestaurantConfig, error) {
	restaurant, err := u.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, restaurant); err != nil {
		return nil, err
	}

	methods, err := u.methodRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	options, err := u.optionRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	hours, err := u.hourRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	sub, err := u.subRepo.GetActive(ctx, restaurantID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	logo := restaurant.LogoURL
	if logo == "" {
		logo = DefaultLogoURL
	}

	return &entities.RestaurantConfig{
		Name:            restaurant.Name,
		Description:     restaurant.Description,
		Whatsapp:        restaurant.Whatsapp,
		LogoURL:         logo,
		BannerURL:       restaurant.BannerURL,
		CustomURL:       restaurant.CustomURL,
		PaymentMethods:  methods,
		DeliveryOptions: options,
		OpeningHours:    hours,
		Subscription:    sub,
	}, nil
}

// UpdateConfig applies a partial store-config update
func (u *RestaurantUsecase) UpdateConfig(ctx context.Context, actor Actor, restaurantID uuid.UUID, input *entities.RestaurantConfigInput) (*entities.Restaurant, error) {
	restaurant, err := u.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, restaurant); err != nil {
		return nil, err
	}

	if input.CustomURL != nil && *input.CustomURL != restaurant.CustomURL {
		taken, err := u.restaurantRepo.CustomURLTaken(ctx, *input.CustomURL, restaurantID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domainerrors.Conflict("custom url already in use")
		}
	}

	if err := u.restaurantRepo.UpdateConfig(ctx, restaurantID, input); err != nil {
		return nil, err
	}
	return u.restaurantRepo.GetByID(ctx, restaurantID)
}
