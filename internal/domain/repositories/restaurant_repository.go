package repositories

import (
	"context"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
)

// RestaurantRepository defines restaurant data operations
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entities.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Restaurant, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entities.Restaurant, error)
	GetByCustomURL(ctx context.Context, customURL string) (*entities.Restaurant, error)
	List(ctx context.Context) ([]*entities.Restaurant, error)
	// CustomURLTaken reports whether another restaurant already claims the
	// url. excludeID skips the restaurant being updated; pass uuid.Nil on
	// create.
	CustomURLTaken(ctx context.Context, customURL string, excludeID uuid.UUID) (bool, error)
	UpdateConfig(ctx context.Context, id uuid.UUID, input *entities.RestaurantConfigInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}
