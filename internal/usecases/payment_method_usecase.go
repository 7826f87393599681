package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"fudys.backend/internal/domain/entities"
	"fudys.backend/internal/domain/repositories"
)

const collectionPaymentMethods = "payment_methods"

// PaymentMethodUsecase replaces a store's accepted payment methods
type PaymentMethodUsecase struct {
	methodRepo repositories.PaymentMethodRepository
	reconciler *Reconciler
}

// NewPaymentMethodUsecase creates a new payment method usecase
func NewPaymentMethodUsecase(methodRepo repositories.PaymentMethodRepository, reconciler *Reconciler) *PaymentMethodUsecase {
	return &PaymentMethodUsecase{methodRepo: methodRepo, reconciler: reconciler}
}

// List returns a store's payment methods
func (u *PaymentMethodUsecase) List(ctx context.Context, restaurantID uuid.UUID) ([]*entities.PaymentMethod, error) {
	return u.methodRepo.ListByRestaurant(ctx, restaurantID)
}

// Replace swaps the stored set for the submitted one. Items with an
// unknown type are dropped, not rejected: the client may send toggles for
// types this platform no longer supports.
func (u *PaymentMethodUsecase) Replace(ctx context.Context, actor Actor, restaurantID uuid.UUID, input *entities.ReconcilePaymentMethodsInput) ([]*entities.PaymentMethod, error) {
	now := time.Now()
	methods := make([]*entities.PaymentMethod, 0, len(input.Methods))
	for _, item := range input.Methods {
		if !entities.ValidPaymentMethodType(item.Type) {
			continue
		}
		method := &entities.PaymentMethod{
			RestaurantID: restaurantID,
			Type:         entities.PaymentMethodType(item.Type),
			IsActive:     item.IsActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if item.Cedula != "" {
			method.Cedula = null.StringFrom(item.Cedula)
		}
		if item.Phone != "" {
			method.Phone = null.StringFrom(item.Phone)
		}
		if item.Bank != "" {
			method.Bank = null.StringFrom(item.Bank)
		}
		methods = append(methods, method)
	}

	err := u.reconciler.Run(ctx, actor, restaurantID, collectionPaymentMethods, func(ctx context.Context) error {
		if err := u.methodRepo.DeleteByRestaurant(ctx, restaurantID); err != nil {
			return err
		}
		for _, method := range methods {
			if err := u.methodRepo.Create(ctx, method); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return methods, nil
}
