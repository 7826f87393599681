package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/infrastructure/models"
)

// SubscriptionRepository implements subscription data operations
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create creates a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, sub *entities.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	m := &models.Subscription{
		ID:           sub.ID,
		RestaurantID: sub.RestaurantID,
		StartDate:    sub.StartDate,
		EndDate:      sub.EndDate,
		IsActive:     sub.IsActive,
		CreatedAt:    sub.CreatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// ListByRestaurant lists a restaurant's subscriptions, newest first
func (r *SubscriptionRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Subscription, error) {
	var subModels []models.Subscription
	if err := GetDB(ctx, r.db).Where("restaurant_id = ?", restaurantID).
		Order("end_date DESC").Find(&subModels).Error; err != nil {
		return nil, err
	}

	subs := make([]*entities.Subscription, 0, len(subModels))
	for i := range subModels {
		subs = append(subs, r.toEntity(&subModels[i]))
	}
	return subs, nil
}

// GetActive returns the active subscription with the latest end date
func (r *SubscriptionRepository) GetActive(ctx context.Context, restaurantID uuid.UUID) (*entities.Subscription, error) {
	var m models.Subscription
	if err := GetDB(ctx, r.db).Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("end_date DESC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// DeleteByRestaurant removes all subscriptions of a restaurant
func (r *SubscriptionRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	return GetDB(ctx, r.db).Delete(&models.Subscription{}, "restaurant_id = ?", restaurantID).Error
}

func (r *SubscriptionRepository) toEntity(m *models.Subscription) *entities.Subscription {
	return &entities.Subscription{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}
