package repositories

import (
	"context"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
)

// PaymentMethodRepository defines payment method data operations
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entities.PaymentMethod) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.PaymentMethod, error)
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error
}

// DeliveryOptionRepository defines delivery option data operations
type DeliveryOptionRepository interface {
	Create(ctx context.Context, option *entities.DeliveryOption) error
	GetByType(ctx context.Context, restaurantID uuid.UUID, optionType string) (*entities.DeliveryOption, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.DeliveryOption, error)
	Update(ctx context.Context, option *entities.DeliveryOption) error
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error
}

// OpeningHourRepository defines opening hour data operations
type OpeningHourRepository interface {
	Create(ctx context.Context, hour *entities.OpeningHour) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.OpeningHour, error)
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error
}
