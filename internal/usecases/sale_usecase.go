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
)

// SaleUsecase records orders and builds the sales reports
type SaleUsecase struct {
	saleRepo       repositories.SaleRepository
	restaurantRepo repositories.RestaurantRepository
	subRepo        repositories.SubscriptionRepository
	uow            repositories.UnitOfWork
	now            func() time.Time
}

// NewSaleUsecase creates a new sale usecase
func NewSaleUsecase(
	saleRepo repositories.SaleRepository,
	restaurantRepo repositories.RestaurantRepository,
	subRepo repositories.SubscriptionRepository,
	uow repositories.UnitOfWork,
) *SaleUsecase {
	return &SaleUsecase{
		saleRepo:       saleRepo,
		restaurantRepo: restaurantRepo,
		subRepo:        subRepo,
		uow:            uow,
		now:            time.Now,
	}
}

// Record stores an order with its line items
func (u *SaleUsecase) Record(ctx context.Context, input *entities.RecordSaleInput) (*entities.Sale, error) {
	if _, err := u.restaurantRepo.GetByID(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	sale := &entities.Sale{
		RestaurantID:  input.RestaurantID,
		TotalUSD:      input.TotalUSD,
		TotalVES:      input.TotalVES,
		CommissionUSD: input.CommissionUSD,
		CreatedAt:     u.now(),
	}
	if input.UserID != "" {
		sale.UserID = null.StringFrom(input.UserID)
	}
	for _, item := range input.Items {
		line := &entities.SaleItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			PriceUSD: item.PriceUSD,
		}
		if item.ProductID != "" {
			line.ProductID = null.StringFrom(item.ProductID)
		}
		sale.Items = append(sale.Items, line)
	}

	err := u.uow.Do(ctx, func(ctx context.Context) error {
		return u.saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// ListByRestaurant returns a store's orders; the caller must own the
// store.
func (u *SaleUsecase) ListByRestaurant(ctx context.Context, actor Actor, restaurantID uuid.UUID) ([]*entities.Sale, error) {
	restaurant, err := u.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, restaurant); err != nil {
		return nil, err
	}
	return u.saleRepo.ListByRestaurant(ctx, restaurantID)
}

// Stats builds one store's sales report over [from, to)
func (u *SaleUsecase) Stats(ctx context.Context, actor Actor, restaurantID uuid.UUID, from, to time.Time) (*entities.RestaurantStats, error) {
	restaurant, err := u.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, restaurant); err != nil {
		return nil, err
	}

	totals, err := u.saleRepo.Totals(ctx, restaurantID, from, to)
	if err != nil {
		return nil, err
	}
	days, err := u.saleRepo.TotalsByDay(ctx, restaurantID, from, to)
	if err != nil {
		return nil, err
	}

	stats := &entities.RestaurantStats{
		SaleTotals: *totals,
		SalesByDay: days,
	}

	sub, err := u.subRepo.GetActive(ctx, restaurantID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
	} else {
		stats.Subscription = &entities.SubscriptionInfo{
			IsActive:  true,
			StartDate: sub.StartDate,
			EndDate:   sub.EndDate,
			DaysLeft:  sub.DaysLeft(u.now()),
		}
	}
	return stats, nil
}

// GlobalStats builds the platform-wide report; super admin only, enforced
// at the route.
func (u *SaleUsecase) GlobalStats(ctx context.Context, from, to time.Time) (*entities.GlobalStats, error) {
	totals, err := u.saleRepo.GlobalTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stores, err := u.saleRepo.TotalsByStore(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &entities.GlobalStats{
		SaleTotals:   *totals,
		SalesByStore: stores,
	}, nil
}
