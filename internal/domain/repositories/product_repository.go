package repositories

import (
	"context"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	// UpdateDisplayOrder moves one product of the given restaurant; rows
	// belonging to other restaurants are never touched.
	UpdateDisplayOrder(ctx context.Context, restaurantID, productID uuid.UUID, order int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error
}
