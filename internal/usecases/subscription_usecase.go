package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/domain/repositories"
)

// SubscriptionUsecase handles subscription activation and inspection
type SubscriptionUsecase struct {
	subRepo        repositories.SubscriptionRepository
	restaurantRepo repositories.RestaurantRepository
	now            func() time.Time
}

// NewSubscriptionUsecase creates a new subscription usecase
func NewSubscriptionUsecase(subRepo repositories.SubscriptionRepository, restaurantRepo repositories.RestaurantRepository) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		subRepo:        subRepo,
		restaurantRepo: restaurantRepo,
		now:            time.Now,
	}
}

// Activate opens a paid period for a store; super admin only, enforced at
// the route.
func (u *SubscriptionUsecase) Activate(ctx context.Context, input *entities.ActivateSubscriptionInput) (*entities.Subscription, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.BadRequest("end_date must be after start_date")
	}
	if _, err := u.restaurantRepo.GetByID(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	sub := &entities.Subscription{
		RestaurantID: input.RestaurantID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsActive:     true,
		CreatedAt:    u.now(),
	}
	if err := u.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Status returns a store's current subscription summary; the caller must
// own the store.
func (u *SubscriptionUsecase) Status(ctx context.Context, actor Actor, restaurantID uuid.UUID) (*entities.SubscriptionInfo, error) {
	restaurant, err := u.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, restaurant); err != nil {
		return nil, err
	}

	sub, err := u.subRepo.GetActive(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return &entities.SubscriptionInfo{
		IsActive:  true,
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		DaysLeft:  sub.DaysLeft(u.now()),
	}, nil
}
