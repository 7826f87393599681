package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/domain/repositories"
	"fudys.backend/pkg/normalize"
)

const collectionDeliveryOptions = "delivery_options"

// DeliveryOptionUsecase reconciles a store's fulfillment options
type DeliveryOptionUsecase struct {
	optionRepo repositories.DeliveryOptionRepository
	reconciler *Reconciler
}

// NewDeliveryOptionUsecase creates a new delivery option usecase
func NewDeliveryOptionUsecase(optionRepo repositories.DeliveryOptionRepository, reconciler *Reconciler) *DeliveryOptionUsecase {
	return &DeliveryOptionUsecase{optionRepo: optionRepo, reconciler: reconciler}
}

// List returns a store's delivery options
func (u *DeliveryOptionUsecase) List(ctx context.Context, restaurantID uuid.UUID) ([]*entities.DeliveryOption, error) {
	return u.optionRepo.ListByRestaurant(ctx, restaurantID)
}

// Reconcile upserts each submitted option by (restaurant, type). Types
// absent from the payload keep their stored row; only the delivery type
// carries a price, parsed leniently from numbers or locale strings.
func (u *DeliveryOptionUsecase) Reconcile(ctx context.Context, actor Actor, restaurantID uuid.UUID, input *entities.ReconcileDeliveryOptionsInput) ([]*entities.DeliveryOption, error) {
	err := u.reconciler.Run(ctx, actor, restaurantID, collectionDeliveryOptions, func(ctx context.Context) error {
		now := time.Now()
		for i, item := range input.Options {
			if item.Type == "" {
				return domainerrors.InvalidItem(i, "missing type")
			}

			var price null.Float64
			if item.Type == entities.DeliveryTypeDelivery && item.Price != nil {
				price = null.Float64From(normalize.Price(item.Price))
			}

			existing, err := u.optionRepo.GetByType(ctx, restaurantID, item.Type)
			if err != nil {
				if !errors.Is(err, domainerrors.ErrNotFound) {
					return err
				}
				if err := u.optionRepo.Create(ctx, &entities.DeliveryOption{
					RestaurantID: restaurantID,
					Type:         item.Type,
					Price:        price,
					IsActive:     item.IsActive,
					CreatedAt:    now,
					UpdatedAt:    now,
				}); err != nil {
					return err
				}
				continue
			}

			// A payload item with no price is a toggle; the stored
			// fee stays.
			if price.Valid {
				existing.Price = price
			}
			existing.IsActive = item.IsActive
			if err := u.optionRepo.Update(ctx, existing); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.optionRepo.ListByRestaurant(ctx, restaurantID)
}
