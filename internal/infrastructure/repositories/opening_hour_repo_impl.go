package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"fudys.backend/internal/domain/entities"
	"fudys.backend/internal/infrastructure/models"
)

// OpeningHourRepository implements opening hour data operations
type OpeningHourRepository struct {
	db *gorm.DB
}

// NewOpeningHourRepository creates a new opening hour repository
func NewOpeningHourRepository(db *gorm.DB) *OpeningHourRepository {
	return &OpeningHourRepository{db: db}
}

// Create creates a new opening hour row
func (r *OpeningHourRepository) Create(ctx context.Context, hour *entities.OpeningHour) error {
	if hour.ID == uuid.Nil {
		hour.ID = uuid.New()
	}
	m := &models.OpeningHour{
		ID:           hour.ID,
		RestaurantID: hour.RestaurantID,
		DayOfWeek:    hour.DayOfWeek,
		OpenTime:     hour.OpenTime,
		CloseTime:    hour.CloseTime,
		CreatedAt:    hour.CreatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// ListByRestaurant lists a restaurant's schedule ordered by weekday
func (r *OpeningHourRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.OpeningHour, error) {
	var hourModels []models.OpeningHour
	if err := GetDB(ctx, r.db).Where("restaurant_id = ?", restaurantID).
		Order("day_of_week ASC").Find(&hourModels).Error; err != nil {
		return nil, err
	}

	hours := make([]*entities.OpeningHour, 0, len(hourModels))
	for i := range hourModels {
		hours = append(hours, r.toEntity(&hourModels[i]))
	}
	return hours, nil
}

// DeleteByRestaurant removes a restaurant's whole schedule
func (r *OpeningHourRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	return GetDB(ctx, r.db).Delete(&models.OpeningHour{}, "restaurant_id = ?", restaurantID).Error
}

func (r *OpeningHourRepository) toEntity(m *models.OpeningHour) *entities.OpeningHour {
	return &entities.OpeningHour{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		DayOfWeek:    m.DayOfWeek,
		OpenTime:     m.OpenTime,
		CloseTime:    m.CloseTime,
		CreatedAt:    m.CreatedAt,
	}
}
