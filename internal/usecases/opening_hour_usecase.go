package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/domain/entities"
	"fudys.backend/internal/domain/repositories"
	"fudys.backend/pkg/normalize"
)

const collectionOpeningHours = "opening_hours"

// OpeningHourUsecase replaces a store's weekly schedule
type OpeningHourUsecase struct {
	hourRepo   repositories.OpeningHourRepository
	reconciler *Reconciler
}

// NewOpeningHourUsecase creates a new opening hour usecase
func NewOpeningHourUsecase(hourRepo repositories.OpeningHourRepository, reconciler *Reconciler) *OpeningHourUsecase {
	return &OpeningHourUsecase{hourRepo: hourRepo, reconciler: reconciler}
}

// List returns a store's schedule; no auth, the storefront shows it too
func (u *OpeningHourUsecase) List(ctx context.Context, restaurantID uuid.UUID) ([]*entities.OpeningHour, error) {
	return u.hourRepo.ListByRestaurant(ctx, restaurantID)
}

// Replace swaps the whole schedule for the submitted one. Every item is
// normalized up front; one bad weekday or time rejects the batch with its
// index and the stored schedule stays as it was.
func (u *OpeningHourUsecase) Replace(ctx context.Context, actor Actor, restaurantID uuid.UUID, input *entities.ReconcileOpeningHoursInput) ([]*entities.OpeningHour, error) {
	now := time.Now()
	hours := make([]*entities.OpeningHour, 0, len(input.Horarios))
	for i, item := range input.Horarios {
		day, err := normalize.Weekday(item.DayOfWeek)
		if err != nil {
			return nil, domainerrors.InvalidItem(i, "invalid day_of_week")
		}
		openTime, err := normalize.Time(item.OpenTime)
		if err != nil {
			return nil, domainerrors.InvalidItem(i, "invalid open_time")
		}
		closeTime, err := normalize.Time(item.CloseTime)
		if err != nil {
			return nil, domainerrors.InvalidItem(i, "invalid close_time")
		}
		hours = append(hours, &entities.OpeningHour{
			RestaurantID: restaurantID,
			DayOfWeek:    day,
			OpenTime:     openTime,
			CloseTime:    closeTime,
			CreatedAt:    now,
		})
	}

	err := u.reconciler.Run(ctx, actor, restaurantID, collectionOpeningHours, func(ctx context.Context) error {
		if err := u.hourRepo.DeleteByRestaurant(ctx, restaurantID); err != nil {
			return err
		}
		for _, hour := range hours {
			if err := u.hourRepo.Create(ctx, hour); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hours, nil
}
