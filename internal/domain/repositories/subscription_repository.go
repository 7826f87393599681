package repositories

import (
	"context"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
)

// SubscriptionRepository defines subscription data operations
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entities.Subscription) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Subscription, error)
	// GetActive returns the active subscription: most recent end date among
	// active rows.
	GetActive(ctx context.Context, restaurantID uuid.UUID) (*entities.Subscription, error)
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error
}
